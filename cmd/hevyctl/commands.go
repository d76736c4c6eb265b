package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/hevystats/internal/exercises"
	"github.com/2beens/hevystats/internal/records"
	"github.com/2beens/hevystats/internal/views"
	"github.com/2beens/hevystats/internal/workouts"
	"github.com/2beens/hevystats/pkg/apiclient"

	"github.com/spf13/cobra"
)

func (c *cli) dashboardCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Yearly summary: counts, monthly volume and top exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = c.now().In(c.loc).Year()
			}
			summary, err := c.client.DashboardSummary(cmd.Context(), year)
			if err != nil {
				return explain(err)
			}
			return views.RenderDashboard(c.out, summary)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year, defaults to the current one")
	return cmd
}

type workoutsFlags struct {
	year           int
	from           string
	to             string
	typeID         int
	includeIgnored bool
}

func (c *cli) workoutsQuery(f workoutsFlags) (apiclient.WorkoutsQuery, error) {
	q := apiclient.WorkoutsQuery{
		Year:           f.year,
		IncludeIgnored: f.includeIgnored,
	}
	if f.from != "" || f.to != "" {
		r, err := (&rangeFlags{from: f.from, to: f.to}).resolve(c.now().In(c.loc))
		if err != nil {
			return q, err
		}
		q.From, q.To = r.From, r.To
	}
	if f.typeID > 0 {
		q.TypeID = &f.typeID
	}
	return q, nil
}

func (c *cli) workoutsCmd() *cobra.Command {
	var f workoutsFlags
	cmd := &cobra.Command{
		Use:   "workouts",
		Short: "List workouts, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := c.workoutsQuery(f)
			if err != nil {
				return err
			}
			list, err := c.client.ListWorkouts(cmd.Context(), q)
			if err != nil {
				return explain(err)
			}
			types, err := c.client.WorkoutTypes(cmd.Context())
			if err != nil {
				return explain(err)
			}
			return views.RenderWorkouts(c.out, list, types, c.loc)
		},
	}
	cmd.Flags().IntVar(&f.year, "year", 0, "only this year")
	cmd.Flags().StringVar(&f.from, "from", "", "first day YYYY-MM-DD")
	cmd.Flags().StringVar(&f.to, "to", "", "last day YYYY-MM-DD")
	cmd.Flags().IntVar(&f.typeID, "type", 0, "workout type id")
	cmd.Flags().BoolVar(&f.includeIgnored, "include-ignored", false, "include ignored workouts")
	return cmd
}

func (c *cli) workoutCmd() *cobra.Command {
	var noCompare bool
	cmd := &cobra.Command{
		Use:   "workout <id>",
		Short: "Show a workout and compare it with the latest one of the same title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := c.client.GetWorkout(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			if noCompare {
				return views.RenderWorkoutDetail(c.out, detail, nil, c.loc)
			}
			cmp, err := c.client.RecentComparison(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			return views.RenderWorkoutDetail(c.out, detail, cmp, c.loc)
		},
	}
	cmd.Flags().BoolVar(&noCompare, "no-compare", false, "skip the comparison")
	return cmd
}

func (c *cli) ignoredCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ignored",
		Short: "List the workouts excluded from statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.client.ListWorkouts(cmd.Context(), apiclient.WorkoutsQuery{IncludeIgnored: true})
			if err != nil {
				return explain(err)
			}
			ignored := make([]workouts.Workout, 0, len(list))
			for _, w := range list {
				if w.Ignored {
					ignored = append(ignored, w)
				}
			}
			types, err := c.client.WorkoutTypes(cmd.Context())
			if err != nil {
				return explain(err)
			}
			return views.RenderWorkouts(c.out, ignored, types, c.loc)
		},
	}
}

func (c *cli) ignoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ignore <id>",
		Short: "Toggle whether a workout is ignored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.client.ToggleIgnored(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			state := "counted again"
			if res.Ignored {
				state = "ignored"
			}
			_, err = fmt.Fprintf(c.out, "workout %s is now %s\n", res.WorkoutID, state)
			return err
		},
	}
}

func (c *cli) compareCmd() *cobra.Command {
	var q apiclient.CompareQuery
	var typeID int
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two workouts, by default the two most recent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (q.Last == "") != (q.Prev == "") {
				return fmt.Errorf("--last and --prev go together")
			}
			if typeID > 0 {
				q.TypeID = &typeID
			}
			cmp, err := c.client.CompareWorkouts(cmd.Context(), q)
			if err != nil {
				return explain(err)
			}
			return views.RenderComparison(c.out, cmp, c.loc)
		},
	}
	cmd.Flags().StringVar(&q.Last, "last", "", "id of the newer workout")
	cmd.Flags().StringVar(&q.Prev, "prev", "", "id of the older workout")
	cmd.Flags().IntVar(&typeID, "type", 0, "only consider workouts of this type")
	return cmd
}

func (c *cli) typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List workout types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := c.client.WorkoutTypes(cmd.Context())
			if err != nil {
				return explain(err)
			}
			for _, t := range types {
				if _, err := fmt.Fprintf(c.out, "%d\t%s\n", t.ID, t.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a workout type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := c.client.CreateWorkoutType(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			_, err = fmt.Fprintf(c.out, "created type %d %s\n", created.ID, created.Name)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "assign <workout-id> [type-id]",
		Short: "Assign a type to a workout, without type-id the type is cleared",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var typeID *int
			if len(args) == 2 {
				id, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid type id %q", args[1])
				}
				typeID = &id
			}
			if err := c.client.AssignWorkoutType(cmd.Context(), args[0], typeID); err != nil {
				return explain(err)
			}
			_, err := fmt.Fprintln(c.out, "ok")
			return err
		},
	})

	return cmd
}

func (c *cli) recordsCmd() *cobra.Command {
	var (
		metric   string
		reps     int
		year     int
		filter   views.RecordFilter
		showZero bool
	)
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Personal records per exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := records.ParseMetric(metric)
			if err != nil {
				return err
			}
			recs, err := c.client.Records(cmd.Context(), apiclient.RecordsQuery{Metric: m, Reps: reps, Year: year})
			if err != nil {
				return explain(err)
			}
			filter.HideZero = !showZero
			return views.RenderRecords(c.out, views.FilterRecords(recs, filter), m, c.loc)
		},
	}
	cmd.Flags().StringVar(&metric, "metric", string(records.MetricMaxWeight), "max_weight, e1rm or max_weight_at_reps")
	cmd.Flags().IntVar(&reps, "reps", 0, "reps for max_weight_at_reps")
	cmd.Flags().IntVar(&year, "year", 0, "only this year")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "filter by exercise title")
	cmd.Flags().BoolVar(&showZero, "show-zero", false, "keep records with a zero value")
	return cmd
}

func (c *cli) exercisesCmd() *cobra.Command {
	var filter views.ExerciseFilter
	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "Exercise catalog with muscle and equipment tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.client.Exercises(cmd.Context())
			if err != nil {
				return explain(err)
			}
			return views.RenderExercises(c.out, list, filter)
		},
	}
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "filter by title")
	cmd.Flags().StringVar(&filter.Muscle, "muscle", "", "only exercises tagged with this muscle")
	cmd.Flags().StringVar(&filter.Equipment, "equipment", "", "only exercises tagged with this equipment")
	return cmd
}

func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (c *cli) tagCmd() *cobra.Command {
	var muscles, equipment string
	cmd := &cobra.Command{
		Use:   "tag <exercise-id>",
		Short: "Replace the muscle and/or equipment tags of an exercise",
		Long: `Replace the muscle and/or equipment tags of an exercise. Only the given
flags are changed; an empty value clears the list.

  hevyctl tag 12 --muscles "Petto,Tricipiti" --equipment Bilanciere`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid exercise id %q", args[0])
			}

			var params exercises.UpdateParams
			if cmd.Flags().Changed("muscles") {
				m := splitTags(muscles)
				params.Muscles = &m
			}
			if cmd.Flags().Changed("equipment") {
				e := splitTags(equipment)
				params.Equipment = &e
			}
			if params.Muscles == nil && params.Equipment == nil {
				return fmt.Errorf("nothing to change, pass --muscles and/or --equipment")
			}

			updated, err := c.client.UpdateExercise(cmd.Context(), id, params)
			if err != nil {
				return explain(err)
			}
			return views.RenderExercises(c.out, []exercises.Exercise{*updated}, views.ExerciseFilter{})
		},
	}
	cmd.Flags().StringVar(&muscles, "muscles", "", "comma separated muscles")
	cmd.Flags().StringVar(&equipment, "equipment", "", "comma separated equipment")
	return cmd
}

func (c *cli) progressCmd() *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "progress <template-id>",
		Short: "Best set per workout for an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.resolve(c.now().In(c.loc))
			if err != nil {
				return err
			}
			progress, err := c.client.ExerciseProgress(cmd.Context(), args[0], r.From, r.To)
			if err != nil {
				return explain(err)
			}
			return views.RenderProgress(c.out, progress, c.loc)
		},
	}
	rf.register(cmd, views.Preset90d)
	return cmd
}

func (c *cli) analysisCmd() *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Muscle group distribution against the previous period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.resolve(c.now().In(c.loc))
			if err != nil {
				return err
			}
			summary, err := c.client.AnalysisSummary(cmd.Context(), r.From, r.To)
			if err != nil {
				return explain(err)
			}
			return views.RenderAnalysis(c.out, summary)
		},
	}
	rf.register(cmd, views.Preset30d)
	return cmd
}

func (c *cli) syncCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull new workouts from Hevy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.client.Sync(cmd.Context(), force)
			if err != nil {
				return explain(err)
			}
			return views.RenderSync(c.out, res, c.loc)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "ignore the sync cooldown")
	return cmd
}

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend and its database are up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.client.Health(cmd.Context()); err != nil {
				return explain(err)
			}
			_, err := fmt.Fprintln(c.out, "ok")
			return err
		},
	}
}
