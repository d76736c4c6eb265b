package hevysync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/hevystats/internal/cache"
	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/telemetry/metrics"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=hevysync_test

const (
	DefaultCooldown = 300 * time.Second
	fetchPagesLimit = 4
)

var ErrSyncInProgress = errors.New("sync already in progress")

type syncRepo interface {
	LastSyncTS(ctx context.Context) (*time.Time, error)
	SetLastSyncTS(ctx context.Context, ts time.Time) error
	UpsertWorkout(ctx context.Context, w hevy.Workout) (int, error)
}

type upstream interface {
	ListWorkouts(ctx context.Context, page, pageSize int) (*hevy.Page, error)
	HasAPIKey() bool
}

type locker interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

type syncer interface {
	Sync(ctx context.Context, force bool) (*Result, error)
}

type Result struct {
	Synced     bool       `json:"synced"`
	Pages      int        `json:"pages"`
	Workouts   int        `json:"workouts"`
	Sets       int        `json:"sets"`
	Skipped    int        `json:"skipped"`
	LastSyncTS *time.Time `json:"last_sync_ts"`
}

type ServiceParams struct {
	Repo     syncRepo
	Upstream upstream
	// Locker is optional, set when redis is enabled.
	Locker         locker
	Cache          cache.Cache
	MetricsManager *metrics.Manager
	PageSize       int
	Cooldown       time.Duration
}

type Service struct {
	repo           syncRepo
	upstream       upstream
	locker         locker
	cache          cache.Cache
	metricsManager *metrics.Manager
	pageSize       int
	cooldown       time.Duration
	now            func() time.Time

	mu sync.Mutex
}

func NewService(params ServiceParams) *Service {
	s := &Service{
		repo:           params.Repo,
		upstream:       params.Upstream,
		locker:         params.Locker,
		cache:          params.Cache,
		metricsManager: params.MetricsManager,
		pageSize:       params.PageSize,
		cooldown:       params.Cooldown,
		now:            time.Now,
	}
	if s.cache == nil {
		s.cache = cache.NopCache{}
	}
	if s.pageSize <= 0 {
		s.pageSize = 10
	}
	if s.cooldown <= 0 {
		s.cooldown = DefaultCooldown
	}
	return s
}

// EnsureSynced runs a full sync unless the last one is younger than the cooldown.
func (s *Service) EnsureSynced(ctx context.Context) error {
	_, err := s.Sync(ctx, false)
	return err
}

// Sync runs a full sync. Without force it is skipped while the cooldown lasts.
// Concurrent callers are serialized and the second one sees the fresh timestamp.
func (s *Service) Sync(ctx context.Context, force bool) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sync.sync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("force", force))

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !force {
		lastSync, err := s.repo.LastSyncTS(ctx)
		if err != nil {
			return nil, fmt.Errorf("last sync ts: %w", err)
		}
		if lastSync != nil && now.Sub(*lastSync) < s.cooldown {
			s.countSync("skipped")
			return &Result{LastSyncTS: lastSync}, nil
		}
	}

	if !s.upstream.HasAPIKey() {
		s.countSync("error")
		return nil, hevy.ErrNoAPIKey
	}

	if s.locker != nil {
		locked, err := s.locker.TryLock(ctx)
		if err != nil {
			s.countSync("error")
			return nil, fmt.Errorf("acquire sync lock: %w", err)
		}
		if !locked {
			s.countSync("locked")
			return nil, ErrSyncInProgress
		}
		defer func() {
			if unlockErr := s.locker.Unlock(context.WithoutCancel(ctx)); unlockErr != nil {
				log.Errorf("release sync lock: %s", unlockErr)
			}
		}()
	}

	res, err := s.FullSync(ctx)
	if err != nil {
		s.countSync("error")
		return nil, err
	}

	if err := s.repo.SetLastSyncTS(ctx, now); err != nil {
		s.countSync("error")
		return nil, fmt.Errorf("set last sync ts: %w", err)
	}
	s.cache.Invalidate(ctx)
	s.countSync("ok")
	if s.metricsManager != nil {
		s.metricsManager.GaugeLastSyncUnix.Set(float64(now.Unix()))
	}

	res.Synced = true
	res.LastSyncTS = &now
	log.Infof("hevy sync done: %d pages, %d workouts, %d sets, %d skipped", res.Pages, res.Workouts, res.Sets, res.Skipped)
	return res, nil
}

// FullSync fetches every page (first page sequentially to learn the page count,
// the rest concurrently) and upserts all workouts in page order. A workout
// postgres rejects for its values is logged and skipped, any other error aborts.
func (s *Service) FullSync(ctx context.Context) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sync.full_sync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := s.now()
	defer func() {
		if s.metricsManager != nil {
			s.metricsManager.HistSyncDuration.Observe(time.Since(start).Seconds())
		}
	}()

	first, err := s.upstream.ListWorkouts(ctx, 1, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch page 1: %w", err)
	}

	pageCount := max(first.PageCount, 1)
	pages := make([]*hevy.Page, pageCount)
	pages[0] = first

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(fetchPagesLimit)
	for p := 2; p <= pageCount; p++ {
		g.Go(func() error {
			page, err := s.upstream.ListWorkouts(gCtx, p, s.pageSize)
			if err != nil {
				return fmt.Errorf("fetch page %d: %w", p, err)
			}
			pages[p-1] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Pages: pageCount}
	for _, page := range pages {
		for _, w := range page.Workouts {
			stored, err := s.repo.UpsertWorkout(ctx, w)
			if pkg.IsDataException(err) {
				log.Warnf("hevy sync, skipping workout [%s]: %s", w.ID, err)
				res.Skipped++
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("upsert workout: %w", err)
			}
			res.Workouts++
			res.Sets += stored
		}
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSyncedWorkouts.Add(float64(res.Workouts))
		s.metricsManager.CounterFetchedPages.Add(float64(res.Pages))
		s.metricsManager.CounterSkippedWorkouts.Add(float64(res.Skipped))
	}
	span.SetAttributes(
		attribute.Int("pages", res.Pages),
		attribute.Int("workouts", res.Workouts),
		attribute.Int("sets", res.Sets),
		attribute.Int("skipped", res.Skipped),
	)

	return res, nil
}

func (s *Service) countSync(result string) {
	if s.metricsManager == nil {
		return
	}
	s.metricsManager.CounterSyncs.WithLabelValues(result).Inc()
}
