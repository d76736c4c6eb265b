package views

import (
	"fmt"
	"time"
)

type Preset string

const (
	Preset30d  Preset = "30d"
	Preset90d  Preset = "90d"
	PresetYTD  Preset = "ytd"
	Preset365d Preset = "365d"
)

var Presets = []Preset{Preset30d, Preset90d, PresetYTD, Preset365d}

// DateRange is a pair of calendar days, both inclusive.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) String() string {
	return r.From.Format(time.DateOnly) + " .. " + r.To.Format(time.DateOnly)
}

func ParsePreset(s string) (Preset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown range preset %q, use one of 30d, 90d, ytd, 365d", s)
}

// Range ends today; an N day preset covers N days including today.
func (p Preset) Range(now time.Time) DateRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case PresetYTD:
		return DateRange{
			From: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			To:   today,
		}
	case Preset30d:
		return DateRange{From: today.AddDate(0, 0, -29), To: today}
	case Preset90d:
		return DateRange{From: today.AddDate(0, 0, -89), To: today}
	default:
		return DateRange{From: today.AddDate(0, 0, -364), To: today}
	}
}
