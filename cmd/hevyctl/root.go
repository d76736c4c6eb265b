package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/2beens/hevystats/internal/logging"
	"github.com/2beens/hevystats/internal/views"
	"github.com/2beens/hevystats/pkg/apiclient"

	"github.com/spf13/cobra"
)

type cli struct {
	out    io.Writer
	apiURL string
	tz     string

	client *apiclient.Client
	loc    *time.Location
	now    func() time.Time
}

func newRootCmd(out io.Writer, now func() time.Time) *cobra.Command {
	c := &cli{
		out: out,
		now: now,
	}
	var logLevel string

	root := &cobra.Command{
		Use:   "hevyctl",
		Short: "Terminal dashboard for the hevy stats backend",
		Long: `hevyctl talks to a running hevy stats backend and renders its data
as tables: the yearly dashboard, workouts and comparisons, personal records,
the exercise catalog and muscle analysis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logging.LoggerSetupParams{LogLevel: logLevel})
			loc, err := time.LoadLocation(c.tz)
			if err != nil {
				return fmt.Errorf("invalid --tz: %w", err)
			}
			c.loc = loc
			c.client = apiclient.NewClient(c.apiURL, nil)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api", envOr("HEVY_API_URL", apiclient.DefaultBaseURL), "backend base url")
	root.PersistentFlags().StringVar(&c.tz, "tz", "Local", "time zone used to print dates")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level")

	root.AddCommand(
		c.dashboardCmd(),
		c.workoutsCmd(),
		c.workoutCmd(),
		c.ignoredCmd(),
		c.ignoreCmd(),
		c.compareCmd(),
		c.typesCmd(),
		c.recordsCmd(),
		c.exercisesCmd(),
		c.tagCmd(),
		c.progressCmd(),
		c.analysisCmd(),
		c.syncCmd(),
		c.healthCmd(),
	)

	return root
}

// rangeFlags resolves --range or an explicit --from/--to pair.
type rangeFlags struct {
	preset string
	from   string
	to     string
}

func (f *rangeFlags) register(cmd *cobra.Command, defaultPreset views.Preset) {
	cmd.Flags().StringVar(&f.preset, "range", string(defaultPreset), "range preset: 30d, 90d, ytd, 365d")
	cmd.Flags().StringVar(&f.from, "from", "", "first day YYYY-MM-DD, overrides --range")
	cmd.Flags().StringVar(&f.to, "to", "", "last day YYYY-MM-DD, defaults to today")
}

func (f *rangeFlags) resolve(now time.Time) (views.DateRange, error) {
	if f.from == "" && f.to == "" {
		preset, err := views.ParsePreset(f.preset)
		if err != nil {
			return views.DateRange{}, err
		}
		return preset.Range(now), nil
	}

	r := views.Preset30d.Range(now)
	if f.from == "" {
		return views.DateRange{}, errors.New("--to needs --from")
	}
	from, err := time.ParseInLocation(time.DateOnly, f.from, now.Location())
	if err != nil {
		return views.DateRange{}, fmt.Errorf("invalid --from: %w", err)
	}
	r.From = from
	if f.to != "" {
		to, err := time.ParseInLocation(time.DateOnly, f.to, now.Location())
		if err != nil {
			return views.DateRange{}, fmt.Errorf("invalid --to: %w", err)
		}
		r.To = to
	}
	if r.To.Before(r.From) {
		return views.DateRange{}, errors.New("--to is before --from")
	}
	return r, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// explain turns API errors into a readable message.
func explain(err error) error {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("not found: %s", apiErr.Message())
		}
		return fmt.Errorf("backend answered %d: %s", apiErr.StatusCode, apiErr.Message())
	}
	return err
}
