package test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/hevystats/pkg/apiclient"
)

func (s *IntegrationTestSuite) sync(ctx context.Context) *apiclient.SyncResult {
	res, err := s.client.Sync(ctx, true)
	s.Require().NoError(err)
	s.Require().True(res.Synced)
	return res
}

func (s *IntegrationTestSuite) TestSyncStoresWorkouts() {
	ctx := context.Background()

	res := s.sync(ctx)
	s.Equal(2, res.Pages)
	s.Equal(4, res.Workouts)
	s.Equal(8, res.Sets)
	s.Equal(2, s.hevy.requestCount())

	var setsCount int
	s.Require().NoError(s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercise_set`).Scan(&setsCount))
	s.Equal(8, setsCount)

	// inside the cooldown a plain sync is skipped
	res, err := s.client.Sync(ctx, false)
	s.Require().NoError(err)
	s.False(res.Synced)
	s.NotNil(res.LastSyncTS)
	s.Equal(2, s.hevy.requestCount())

	// a forced sync upserts, nothing is duplicated
	s.sync(ctx)
	s.Require().NoError(s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercise_set`).Scan(&setsCount))
	s.Equal(8, setsCount)
}

func (s *IntegrationTestSuite) TestListTriggersInitialSync() {
	list, err := s.client.ListWorkouts(context.Background(), apiclient.WorkoutsQuery{})
	s.Require().NoError(err)
	s.Len(list, 4)
	s.Positive(s.hevy.requestCount())
}

func (s *IntegrationTestSuite) TestListAndGetWorkouts() {
	ctx := context.Background()
	s.sync(ctx)

	list, err := s.client.ListWorkouts(ctx, apiclient.WorkoutsQuery{})
	s.Require().NoError(err)
	s.Require().Len(list, 4)
	s.Equal([]string{"w3", "w2", "w1", "w0"}, []string{list[0].ID, list[1].ID, list[2].ID, list[3].ID})
	s.Require().NotNil(list[0].DurationSeconds)
	s.Equal(65*60, *list[0].DurationSeconds)

	list, err = s.client.ListWorkouts(ctx, apiclient.WorkoutsQuery{Year: 2024})
	s.Require().NoError(err)
	s.Len(list, 3)

	list, err = s.client.ListWorkouts(ctx, apiclient.WorkoutsQuery{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("w2", list[0].ID)

	detail, err := s.client.GetWorkout(ctx, "w3")
	s.Require().NoError(err)
	s.Equal("Push Day", detail.Title)
	s.Require().Len(detail.Sets, 3)
	s.Equal("Bench Press", detail.Sets[0].ExerciseTitle)
	s.Equal(105.0, *detail.Sets[1].WeightKg)
	s.Equal("Triceps Pushdown", detail.Sets[2].ExerciseTitle)

	_, err = s.client.GetWorkout(ctx, "missing")
	s.True(apiclient.IsNotFound(err))
}

func (s *IntegrationTestSuite) TestToggleIgnored() {
	ctx := context.Background()
	s.sync(ctx)

	res, err := s.client.ToggleIgnored(ctx, "w2")
	s.Require().NoError(err)
	s.True(res.Ignored)

	list, err := s.client.ListWorkouts(ctx, apiclient.WorkoutsQuery{})
	s.Require().NoError(err)
	s.Len(list, 3)

	list, err = s.client.ListWorkouts(ctx, apiclient.WorkoutsQuery{IncludeIgnored: true})
	s.Require().NoError(err)
	s.Len(list, 4)

	summary, err := s.client.DashboardSummary(ctx, 2024)
	s.Require().NoError(err)
	s.Equal(2, summary.WorkoutsCount)

	res, err = s.client.ToggleIgnored(ctx, "w2")
	s.Require().NoError(err)
	s.False(res.Ignored)

	summary, err = s.client.DashboardSummary(ctx, 2024)
	s.Require().NoError(err)
	s.Equal(3, summary.WorkoutsCount)

	_, err = s.client.ToggleIgnored(ctx, "missing")
	s.True(apiclient.IsNotFound(err))
}

func (s *IntegrationTestSuite) TestWorkoutTypes() {
	ctx := context.Background()
	s.sync(ctx)

	created, err := s.client.CreateWorkoutType(ctx, "Upper")
	s.Require().NoError(err)
	s.Equal("Upper", created.Name)

	_, err = s.client.CreateWorkoutType(ctx, "Upper")
	var apiErr *apiclient.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusConflict, apiErr.StatusCode)

	s.Require().NoError(s.client.AssignWorkoutType(ctx, "w3", &created.ID))

	list, err := s.client.ListWorkouts(ctx, apiclient.WorkoutsQuery{TypeID: &created.ID})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("w3", list[0].ID)

	types, err := s.client.WorkoutTypes(ctx)
	s.Require().NoError(err)
	s.Len(types, 1)

	s.Require().NoError(s.client.AssignWorkoutType(ctx, "w3", nil))
	list, err = s.client.ListWorkouts(ctx, apiclient.WorkoutsQuery{TypeID: &created.ID})
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *IntegrationTestSuite) TestCompare() {
	ctx := context.Background()
	s.sync(ctx)

	latest, err := s.client.CompareWorkouts(ctx, apiclient.CompareQuery{})
	s.Require().NoError(err)
	s.Equal("w3", latest.Last.ID)
	s.Equal("w2", latest.Prev.ID)

	cmp, err := s.client.RecentComparison(ctx, "w1")
	s.Require().NoError(err)
	s.Equal("w3", cmp.Last.ID)
	s.Equal("w1", cmp.Prev.ID)
	s.InDelta(500+315+360, cmp.LastVolumeKg, 0.001)
	s.InDelta(1000, cmp.PrevVolumeKg, 0.001)

	s.Require().Len(cmp.Rows, 2)
	s.Equal("T-tri", cmp.Rows[0].Key)
	s.Require().NotNil(cmp.Rows[0].Prev)
	s.Zero(cmp.Rows[0].Prev.VolumeKg)
	s.InDelta(360, cmp.Rows[0].DeltaVolumeKg, 0.001)
	bench := cmp.Rows[1]
	s.Equal("T-bench", bench.Key)
	s.Equal(105.0, bench.Last.BestWeightKg)
	s.Equal(100.0, bench.Prev.BestWeightKg)
	s.InDelta(5, bench.DeltaWeightKg, 0.001)
	s.Equal(-2, bench.DeltaReps)
	s.InDelta(-185, bench.DeltaVolumeKg, 0.001)

	_, err = s.client.CompareWorkouts(ctx, apiclient.CompareQuery{Last: "w3", Prev: "missing"})
	s.True(apiclient.IsNotFound(err))
}

func (s *IntegrationTestSuite) TestSyncUpstreamFailure() {
	s.hevy.failWith(http.StatusInternalServerError)

	_, err := s.client.Sync(context.Background(), true)
	var apiErr *apiclient.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusBadGateway, apiErr.StatusCode)

	var lastSync *time.Time
	s.Require().NoError(s.DB.QueryRow(`SELECT last_sync_ts FROM sync_state WHERE id = 1`).Scan(&lastSync))
	s.Nil(lastSync)
}

func (s *IntegrationTestSuite) TestHealthAndCORS() {
	status, err := s.client.Health(context.Background())
	s.Require().NoError(err)
	s.True(status.OK)

	req, err := http.NewRequest(http.MethodOptions, serverEndpoint+"/api/workouts", nil)
	s.Require().NoError(err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal("http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}
