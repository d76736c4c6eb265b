package test

import (
	"context"
	"time"

	"github.com/2beens/hevystats/internal/exercises"
	"github.com/2beens/hevystats/internal/records"
	"github.com/2beens/hevystats/pkg/apiclient"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func (s *IntegrationTestSuite) TestDashboardSummary() {
	ctx := context.Background()
	s.sync(ctx)

	summary, err := s.client.DashboardSummary(ctx, 2024)
	s.Require().NoError(err)
	s.Equal(2024, summary.Year)
	s.Equal(3, summary.WorkoutsCount)
	s.Equal(3, summary.TrainingDays)
	s.InDelta(3615, summary.TotalVolumeKg, 0.001)
	s.Equal(3, summary.UniqueExercises)
	s.Equal(3, summary.PRCount)
	s.InDelta(1000, summary.VolumeByMonth[1], 0.001)
	s.InDelta(2615, summary.VolumeByMonth[2], 0.001)
	s.Zero(summary.VolumeByMonth[0])
	s.Equal(2, summary.WorkoutsByMonth[2])
	s.Require().NotEmpty(summary.TopExercisesByVolume)
	s.Equal("Bench Press", summary.TopExercisesByVolume[0].ExerciseTitle)

	summary, err = s.client.DashboardSummary(ctx, 2023)
	s.Require().NoError(err)
	s.Equal(1, summary.WorkoutsCount)
	s.Equal(1, summary.PRCount)
}

func (s *IntegrationTestSuite) TestRecords() {
	ctx := context.Background()
	s.sync(ctx)

	recs, err := s.client.Records(ctx, apiclient.RecordsQuery{})
	s.Require().NoError(err)
	s.Require().Len(recs, 4)
	s.Equal("Squat", recs[0].ExerciseTitle)
	s.Equal(140.0, recs[0].Value)
	s.Equal("Bench Press", recs[1].ExerciseTitle)
	s.Equal(105.0, recs[1].Value)
	s.Equal("w3", recs[1].WorkoutID)

	// equal weight, more reps wins
	s.Equal("Bent Over Row", recs[2].ExerciseTitle)
	s.Require().NotNil(recs[2].Reps)
	s.Equal(10, *recs[2].Reps)

	recs, err = s.client.Records(ctx, apiclient.RecordsQuery{Year: 2023})
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Equal("Squat", recs[0].ExerciseTitle)

	recs, err = s.client.Records(ctx, apiclient.RecordsQuery{Metric: records.MetricMaxWeightAtReps, Reps: 5})
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Equal("Bench Press", recs[0].ExerciseTitle)
	s.Equal(100.0, recs[0].Value)

	recs, err = s.client.Records(ctx, apiclient.RecordsQuery{Metric: records.MetricE1RM})
	s.Require().NoError(err)
	s.Require().NotEmpty(recs)
	s.InDelta(140*(1+3.0/30), recs[0].Value, 0.001)
}

func (s *IntegrationTestSuite) TestExerciseTagsAndAnalysis() {
	ctx := context.Background()
	s.sync(ctx)

	all, err := s.client.Exercises(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	byTemplate := map[string]exercises.Exercise{}
	for _, e := range all {
		byTemplate[e.ExerciseTemplateID] = e
		s.Empty(e.Muscles)
	}

	benchMuscles := []string{" Petto", "Tricipiti", "petto"}
	benchEquipment := []string{"Bilanciere"}
	bench, err := s.client.UpdateExercise(ctx, byTemplate["T-bench"].ID, exercises.UpdateParams{
		Muscles:   &benchMuscles,
		Equipment: &benchEquipment,
	})
	s.Require().NoError(err)
	s.Equal([]string{"petto", "tricipiti"}, bench.Muscles)
	s.Equal([]string{"bilanciere"}, bench.Equipment)

	rowMuscles := []string{"Schiena"}
	_, err = s.client.UpdateExercise(ctx, byTemplate["T-row"].ID, exercises.UpdateParams{Muscles: &rowMuscles})
	s.Require().NoError(err)

	// muscles only, equipment stays
	onlyPetto := []string{"petto", "tricipiti"}
	bench, err = s.client.UpdateExercise(ctx, byTemplate["T-bench"].ID, exercises.UpdateParams{Muscles: &onlyPetto})
	s.Require().NoError(err)
	s.Equal([]string{"bilanciere"}, bench.Equipment)

	_, err = s.client.UpdateExercise(ctx, 99999, exercises.UpdateParams{Muscles: &onlyPetto})
	s.True(apiclient.IsNotFound(err))

	summary, err := s.client.AnalysisSummary(ctx, day(2024, time.March, 1), day(2024, time.March, 31))
	s.Require().NoError(err)
	s.Equal("2024-01-30", summary.PreviousFrom)
	s.Equal("2024-02-29", summary.PreviousTo)
	s.Equal(map[string]int{"petto": 1, "tricipiti": 1, "schiena": 1}, summary.MuscleCounts)
	s.Equal(1, summary.Radar.Current["chest"])
	s.Equal(1, summary.Radar.Current["arms"])
	s.Equal(1, summary.Radar.Current["back"])
	s.Equal(0, summary.Radar.Current["legs"])
	s.Equal(2, summary.Meta.WorkoutsCurrent)
	s.Equal(1, summary.Radar.Previous["chest"])
	s.Equal(1, summary.Meta.WorkoutsPrevious)
}

func (s *IntegrationTestSuite) TestExerciseProgress() {
	ctx := context.Background()
	s.sync(ctx)

	progress, err := s.client.ExerciseProgress(ctx, "T-bench", day(2024, time.January, 1), day(2024, time.March, 31))
	s.Require().NoError(err)
	s.Equal("Bench Press", progress.ExerciseTitle)
	s.Equal(4, progress.Summary.TotalSets)
	s.Equal(2, progress.Summary.WorkoutsCount)
	s.Require().Len(progress.Series, 2)
	s.Equal("w1", progress.Series[0].WorkoutID)
	s.Equal("w3", progress.Series[1].WorkoutID)
	s.Equal(105.0, *progress.Series[1].WeightKg)

	progress, err = s.client.ExerciseProgress(ctx, "T-unknown", day(2024, time.January, 1), day(2024, time.March, 31))
	s.Require().NoError(err)
	s.Zero(progress.Summary.TotalSets)
	s.Empty(progress.Series)
}
