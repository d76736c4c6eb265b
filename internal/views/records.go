package views

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/2beens/hevystats/internal/records"
)

type RecordFilter struct {
	Query    string
	HideZero bool
}

// FilterRecords keeps records whose title contains the query and orders them
// by value, then reps (both descending), then title.
func FilterRecords(recs []records.Record, f RecordFilter) []records.Record {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]records.Record, 0, len(recs))
	for _, r := range recs {
		if f.HideZero && r.Value <= 0 {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.ExerciseTitle), query) {
			continue
		}
		out = append(out, r)
	}

	repsOf := func(r records.Record) int {
		if r.Reps == nil {
			return 0
		}
		return *r.Reps
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		if ri, rj := repsOf(out[i]), repsOf(out[j]); ri != rj {
			return ri > rj
		}
		return strings.ToLower(out[i].ExerciseTitle) < strings.ToLower(out[j].ExerciseTitle)
	})
	return out
}

func RenderRecords(w io.Writer, recs []records.Record, metric records.Metric, loc *time.Location) error {
	valueHeader := "Weight"
	if metric == records.MetricE1RM {
		valueHeader = "e1RM"
	}

	t := newTable("Exercise", valueHeader, "Reps", "Date", "Workout")
	for _, r := range recs {
		t.Row(
			r.ExerciseTitle,
			FormatKg(r.Value),
			formatOptInt(r.Reps),
			FormatDate(r.Date, loc),
			WorkoutTitle(r.WorkoutTitle),
		)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), subtleStyle.Render(fmt.Sprintf("%d records", len(recs))))
	return err
}
