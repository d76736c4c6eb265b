package hevy

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	workoutIDKeys     = []string{"id", "workout_id", "uuid"}
	workoutTitleKeys  = []string{"title", "name"}
	workoutDateKeys   = []string{"start_time", "startTime", "date", "performed_at", "created_at"}
	exercisesKeys     = []string{"exercises", "items", "workout_exercises"}
	exerciseTitleKeys = []string{"title", "name", "exercise_title"}
	templateIDKeys    = []string{"exercise_template_id", "exerciseTemplateId", "template_id", "exercise_id"}
	setsKeys          = []string{"sets", "exercise_sets"}
	repsKeys          = []string{"reps", "rep_count", "repetitions"}
	weightKeys        = []string{"weight_kg", "weightKg", "weight", "kg"}
	distanceKeys      = []string{"distance", "distance_m", "meters", "distance_meters"}
	durationKeys      = []string{"duration_seconds", "durationSeconds", "seconds", "duration"}
	setTypeKeys       = []string{"type", "set_type", "kind"}
	pageCountKeys     = []string{"page_count", "pageCount"}
)

// widths of the text columns the normalized values end up in
const (
	maxIDLen    = 64
	maxTitleLen = 255
	maxTagLen   = 64
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func normalizePage(raw map[string]any) *Page {
	page := &Page{PageCount: 1}
	if pc := ToInt(pick(raw, pageCountKeys)); pc != nil && *pc > 0 {
		page.PageCount = *pc
	}

	rawWorkouts, _ := raw["workouts"].([]any)
	for _, rw := range rawWorkouts {
		wm, ok := rw.(map[string]any)
		if !ok {
			continue
		}
		w, ok := normalizeWorkout(wm)
		if !ok {
			continue
		}
		page.Workouts = append(page.Workouts, w)
	}
	return page
}

// normalizeWorkout returns false for entries without a usable id.
func normalizeWorkout(raw map[string]any) (Workout, bool) {
	id := toText(pick(raw, workoutIDKeys))
	if id == "" || utf8.RuneCountInString(id) > maxIDLen {
		return Workout{}, false
	}

	w := Workout{
		ID:        id,
		Title:     clip(toText(pick(raw, workoutTitleKeys)), maxTitleLen),
		StartTime: ParseTime(raw["start_time"]),
		EndTime:   ParseTime(raw["end_time"]),
	}
	w.Date = ParseTime(pick(raw, workoutDateKeys))
	if w.Date == nil {
		w.Date = w.EndTime
	}
	if w.StartTime != nil && w.EndTime != nil {
		if secs := w.EndTime.Sub(*w.StartTime).Seconds(); secs <= math.MaxInt32 {
			dur := max(0, int(secs))
			w.DurationSeconds = &dur
		}
	}
	w.Raw = rawJSON(raw)

	exercises, _ := pick(raw, exercisesKeys).([]any)
	for _, re := range exercises {
		em, ok := re.(map[string]any)
		if !ok {
			continue
		}
		w.Exercises = append(w.Exercises, normalizeExercise(em))
	}

	return w, true
}

func normalizeExercise(raw map[string]any) Exercise {
	e := Exercise{
		Title: clip(toText(pick(raw, exerciseTitleKeys)), maxTitleLen),
	}
	rawTemplateID := pick(raw, templateIDKeys)
	if n, isNum := rawTemplateID.(json.Number); !isNum || n.String() != "0" {
		if tid := toText(rawTemplateID); tid != "" && utf8.RuneCountInString(tid) <= maxIDLen {
			e.TemplateID = &tid
		}
	}

	sets, _ := pick(raw, setsKeys).([]any)
	for i, rs := range sets {
		sm, ok := rs.(map[string]any)
		if !ok {
			sm = map[string]any{}
		}
		s := Set{
			Index:           i + 1,
			Reps:            ToInt(pick(sm, repsKeys)),
			WeightKg:        ToFloat(pick(sm, weightKeys)),
			DistanceMeters:  ToFloat(pick(sm, distanceKeys)),
			DurationSeconds: ToInt(pick(sm, durationKeys)),
			Raw:             rawJSON(sm),
		}
		if st := clip(toText(pick(sm, setTypeKeys)), maxTagLen); st != "" {
			s.SetType = &st
		}
		e.Sets = append(e.Sets, s)
	}
	return e
}

// pick returns the value of the first key present with a non-null value.
func pick(obj map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// ToFloat accepts numbers and numeric strings; anything else is nil.
func ToFloat(v any) *float64 {
	var f float64
	var err error
	switch t := v.(type) {
	case nil:
		return nil
	case json.Number:
		f, err = t.Float64()
	case float64:
		f = t
	case int:
		f = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		f, err = strconv.ParseFloat(s, 64)
	case bool:
		if t {
			f = 1
		}
	default:
		return nil
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ToInt is ToFloat truncated toward zero. Values outside the int32 range are nil.
func ToInt(v any) *int {
	f := ToFloat(v)
	if f == nil {
		return nil
	}
	t := math.Trunc(*f)
	if t < math.MinInt32 || t > math.MaxInt32 {
		return nil
	}
	i := int(t)
	return &i
}

// clip cuts s to at most n runes.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// ParseTime accepts ISO-8601 dates and datetimes, with or without offset.
// Values without an offset are taken as UTC.
func ParseTime(v any) *time.Time {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func rawJSON(v map[string]any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
