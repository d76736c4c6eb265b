package views

import (
	"fmt"
	"io"
	"time"

	"github.com/2beens/hevystats/pkg/apiclient"
)

func RenderSync(w io.Writer, res *apiclient.SyncResult, loc *time.Location) error {
	if !res.Synced {
		_, err := fmt.Fprintf(w, "already up to date, last sync %s\n", formatTimestamp(res.LastSyncTS, loc))
		return err
	}
	_, err := fmt.Fprintf(w, "synced %d workouts (%d sets, %d pages), last sync %s\n",
		res.Workouts, res.Sets, res.Pages, formatTimestamp(res.LastSyncTS, loc))
	return err
}

func formatTimestamp(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "never"
	}
	if loc != nil {
		return t.In(loc).Format("02 Jan 2006 15:04")
	}
	return t.Format("02 Jan 2006 15:04")
}
