package workouts

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/2beens/hevystats/pkg"
)

// ParseListParams reads year, from, to, typeId and includeIgnored. When both
// year and from/to are given the narrower bound of each side wins.
func ParseListParams(query url.Values, loc *time.Location) (ListParams, error) {
	var params ListParams

	if yearStr := query.Get("year"); yearStr != "" {
		year, err := pkg.ParseYear(yearStr)
		if err != nil {
			return ListParams{}, err
		}
		from, before := pkg.YearRange(year, loc)
		params.From = &from
		params.Before = &before
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, _, err := pkg.ParseDateOrDateTime(fromStr, loc)
		if err != nil {
			return ListParams{}, fmt.Errorf("invalid from: %w", err)
		}
		if params.From == nil || from.After(*params.From) {
			params.From = &from
		}
	}

	if toStr := query.Get("to"); toStr != "" {
		to, dateOnly, err := pkg.ParseDateOrDateTime(toStr, loc)
		if err != nil {
			return ListParams{}, fmt.Errorf("invalid to: %w", err)
		}
		before := pkg.InclusiveEnd(to, dateOnly)
		if params.Before == nil || before.Before(*params.Before) {
			params.Before = &before
		}
	}

	typeID, err := ParseTypeID(query)
	if err != nil {
		return ListParams{}, err
	}
	params.TypeID = typeID

	if includeStr := query.Get("includeIgnored"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return ListParams{}, fmt.Errorf("invalid includeIgnored: %q", includeStr)
		}
		params.IncludeIgnored = include
	}

	return params, nil
}

func ParseTypeID(query url.Values) (*int, error) {
	typeIDStr := query.Get("typeId")
	if typeIDStr == "" {
		return nil, nil
	}
	typeID, err := strconv.Atoi(typeIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid typeId: %q", typeIDStr)
	}
	return &typeID, nil
}
