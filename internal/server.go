package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/hevystats/internal/analysis"
	"github.com/2beens/hevystats/internal/cache"
	"github.com/2beens/hevystats/internal/compare"
	"github.com/2beens/hevystats/internal/config"
	"github.com/2beens/hevystats/internal/dashboard"
	"github.com/2beens/hevystats/internal/db"
	"github.com/2beens/hevystats/internal/exercises"
	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/hevysync"
	"github.com/2beens/hevystats/internal/middleware"
	"github.com/2beens/hevystats/internal/misc"
	"github.com/2beens/hevystats/internal/records"
	"github.com/2beens/hevystats/internal/telemetry/metrics"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/internal/workouts"
	"github.com/2beens/hevystats/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	redisClient   *redis.Client
	responseCache cache.Cache
	hevyClient    *hevy.Client
	syncService   *hevysync.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

const shutdownTimeout = 15 * time.Second

type NewServerParams struct {
	Config      *config.Config
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown := func() {}
	if cfg.TracingEnabled {
		shutdown, err := tracing.HoneycombSetup()
		if err != nil {
			return nil, err
		}
		otelShutdown = shutdown
	}

	dbPool, err := db.Open(ctx, db.OpenParams{
		DatabaseURL:    cfg.DatabaseURL,
		TracingEnabled: cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "hevy"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("hevy", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	s := &Server{
		config:         cfg,
		dbPool:         dbPool,
		versionInfo:    params.VersionInfo,
		responseCache:  cache.NopCache{},
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
		hevyClient:     hevy.NewClient(cfg.HevyBaseURL, cfg.HevyAPIKey, nil),
	}

	syncParams := hevysync.ServiceParams{
		Repo:           hevysync.NewRepo(dbPool),
		Upstream:       s.hevyClient,
		MetricsManager: metricsManager,
		PageSize:       cfg.HevyPageSize,
		Cooldown:       cfg.SyncCooldown(),
	}

	if cfg.RedisEnabled {
		s.redisClient = redis.NewClient(&redis.Options{
			Addr: net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			DB:   cfg.RedisDB,
		})
		s.redisClient.AddHook(redisotel.NewTracingHook())

		rdbStatus := s.redisClient.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}

		s.responseCache = cache.NewRedisCache(s.redisClient, cfg.CacheTTL())
		syncParams.Locker = hevysync.NewRedisLock(s.redisClient, hevysync.DefaultLockTTL)
	} else {
		log.Debugln("redis disabled, responses not cached")
	}

	syncParams.Cache = s.responseCache
	s.syncService = hevysync.NewService(syncParams)

	if !s.hevyClient.HasAPIKey() {
		log.Warnln("HEVY_API_KEY not set, serving local data only")
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("hevy-router"))

	loc := s.config.Location()

	miscHandler := misc.NewHandler(misc.NewRepo(s.dbPool), s.versionInfo)
	miscHandler.SetupRoutes(r)

	syncHandler := hevysync.NewHandler(s.syncService)
	var syncRoute http.Handler = http.HandlerFunc(syncHandler.HandleSync)
	if s.redisClient != nil && s.config.SyncRateLimitPerMin > 0 {
		reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
		syncRoute = middleware.RateLimit(reqRateLimiter, "sync", s.config.SyncRateLimitPerMin, s.metricsManager)(syncRoute)
	}
	r.Handle("/api/sync", syncRoute).Methods("POST", "OPTIONS").Name("sync")

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo, s.syncService, s.responseCache, loc)
	compareHandler := compare.NewHandler(workoutsRepo)
	r.HandleFunc("/api/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/api/workouts/compare", compareHandler.HandleCompare).Methods("GET", "OPTIONS").Name("compare-workouts")
	r.HandleFunc("/api/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/api/workouts/{id}/recent-comparison", compareHandler.HandleRecentComparison).Methods("GET", "OPTIONS").Name("recent-comparison")
	r.HandleFunc("/api/ignored/{id}", workoutsHandler.HandleToggleIgnored).Methods("POST", "OPTIONS").Name("toggle-ignored")
	r.HandleFunc("/api/workout-types", workoutsHandler.HandleListTypes).Methods("GET", "OPTIONS").Name("list-workout-types")
	r.HandleFunc("/api/workout-types", workoutsHandler.HandleCreateType).Methods("POST").Name("create-workout-type")
	r.HandleFunc("/api/workout-types/assign", workoutsHandler.HandleAssignType).Methods("POST", "OPTIONS").Name("assign-workout-type")

	recordsRepo := records.NewRepo(s.dbPool)
	recordsHandler := records.NewHandler(recordsRepo, s.syncService, s.responseCache, loc)
	r.HandleFunc("/api/records", recordsHandler.HandleList).Methods("GET", "OPTIONS").Name("records")

	dashboardHandler := dashboard.NewHandler(dashboard.HandlerParams{
		Workouts:      workoutsRepo,
		Sets:          dashboard.NewRepo(s.dbPool),
		Records:       recordsRepo,
		Syncer:        s.syncService,
		ResponseCache: s.responseCache,
		Location:      loc,
	})
	r.HandleFunc("/api/dashboard/summary", dashboardHandler.HandleSummary).Methods("GET", "OPTIONS").Name("dashboard-summary")

	exercisesHandler := exercises.NewHandler(exercises.NewRepo(s.dbPool), s.responseCache, loc)
	r.HandleFunc("/api/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/api/exercises/{id}", exercisesHandler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/api/exercises/{template_id}/progress", exercisesHandler.HandleProgress).Methods("GET", "OPTIONS").Name("exercise-progress")

	analysisHandler := analysis.NewHandler(analysis.NewRepo(s.dbPool), s.responseCache, loc)
	r.HandleFunc("/api/analysis/summary", analysisHandler.HandleSummary).Methods("GET", "OPTIONS").Name("analysis-summary")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Tracef("no route for %s %s", req.Method, req.URL.Path)
		pkg.WriteMessage(w, "not found", http.StatusNotFound)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

// Serve binds the API (and the metrics endpoint when configured) and serves
// in the background. A bind failure of the API is returned.
func (s *Server) Serve(host string, port int) error {
	apiAddr := net.JoinHostPort(host, strconv.Itoa(port))
	apiListener, err := net.Listen("tcp", apiAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", apiAddr, err)
	}

	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		WriteTimeout: 5 * time.Minute, // a full sync can take a while
		ReadTimeout:  time.Minute,
	}
	go serveUntilClosed("api", s.httpServer, apiListener)
	log.Infof(" > api listening on: [%s]", apiAddr)

	if s.config.PrometheusMetricsPort != "" {
		metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
		metricsListener, err := net.Listen("tcp", metricsAddr)
		if err != nil {
			// metrics are optional, the api keeps running
			log.Errorf("metrics disabled, listen on %s: %s", metricsAddr, err)
		} else {
			metricsRouter := mux.NewRouter()
			metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
			s.metricsHttpServer = &http.Server{
				Handler:           metricsRouter,
				ReadHeaderTimeout: 10 * time.Second,
			}
			go serveUntilClosed("metrics", s.metricsHttpServer, metricsListener)
			log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		}
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
	return nil
}

func serveUntilClosed(name string, server *http.Server, listener net.Listener) {
	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("%s server stopped: %s", name, err)
	}
}

// GracefulShutdown waits up to shutdownTimeout for in-flight requests, then
// releases redis and the db pool. All close errors are returned together.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs error
	if s.httpServer != nil {
		errs = multierr.Append(errs, wrapErr("shutdown api server", s.httpServer.Shutdown(ctx)))
	}
	if s.metricsHttpServer != nil {
		errs = multierr.Append(errs, wrapErr("shutdown metrics server", s.metricsHttpServer.Shutdown(ctx)))
	}

	s.otelShutdown()

	if s.redisClient != nil {
		errs = multierr.Append(errs, wrapErr("close redis client", s.redisClient.Close()))
	}
	if s.dbPool != nil {
		s.dbPool.Close() // blocks until acquired conns are released
	}

	log.Warnln("server shut down")
	return errs
}

func wrapErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
