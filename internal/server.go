package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/fitpath/fitpath/internal/assessment"
	"github.com/fitpath/fitpath/internal/auth"
	"github.com/fitpath/fitpath/internal/catalog"
	"github.com/fitpath/fitpath/internal/config"
	"github.com/fitpath/fitpath/internal/db"
	"github.com/fitpath/fitpath/internal/middleware"
	"github.com/fitpath/fitpath/internal/misc"
	"github.com/fitpath/fitpath/internal/movescreen"
	"github.com/fitpath/fitpath/internal/progression"
	"github.com/fitpath/fitpath/internal/telemetry/metrics"
	"github.com/fitpath/fitpath/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	catalog     *catalog.InMemory
	tipsManager *misc.TipsManager

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "fitpath_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitpath-backend", rdb)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		catalog:     catalog.Default(),
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	tipsCsvFile, err := os.Open(params.Config.TipsCsvPath)
	if err != nil {
		return nil, fmt.Errorf("open tips file: %w", err)
	}
	defer func() {
		if err := tipsCsvFile.Close(); err != nil {
			log.Warnf("close tips csv file: %s", err)
		}
	}()

	s.tipsManager, err = misc.NewTipsManager(csv.NewReader(tipsCsvFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create tips manager: %s", err)
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	catalogHandler := catalog.NewHandler(s.catalog)
	r.HandleFunc("/catalog/categories", catalogHandler.HandleCategories).Methods("GET", "OPTIONS").Name("catalog-categories")
	r.HandleFunc("/catalog/categories/{id}", catalogHandler.HandleCategory).Methods("GET", "OPTIONS").Name("catalog-category")
	r.HandleFunc("/catalog/movement-tests", catalogHandler.HandleMovementTests).Methods("GET", "OPTIONS").Name("catalog-movement-tests")
	r.HandleFunc("/catalog/movement-tests/{id}", catalogHandler.HandleMovementTest).Methods("GET", "OPTIONS").Name("catalog-movement-test")
	r.HandleFunc("/catalog/progressions", catalogHandler.HandleProgressionTemplates).Methods("GET", "OPTIONS").Name("catalog-progressions")
	r.HandleFunc("/catalog/progressions/{id}", catalogHandler.HandleProgressionTemplate).Methods("GET", "OPTIONS").Name("catalog-progression")

	assessmentService := assessment.NewService(
		s.catalog,
		assessment.NewRepo(s.dbPool),
		assessment.NewScorer(assessment.DefaultNormalizer()),
		func(a *assessment.UserAssessment) {
			log.Tracef("assessment [%s] completed for user [%s]: %s", a.ID, a.UserID, a.OverallLevel)
		},
	)
	assessmentHandler := assessment.NewHandler(assessmentService, s.metricsManager)
	r.HandleFunc("/assessment", assessmentHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-assessment")
	r.HandleFunc("/assessment/{id}", assessmentHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-assessment")
	r.HandleFunc("/assessment/user/{userId}", assessmentHandler.HandleList).Methods("GET", "OPTIONS").Name("list-assessments")

	screenService := movescreen.NewService(
		movescreen.NewRepo(s.dbPool),
		movescreen.NewScorer(s.catalog),
		func(a *movescreen.Assessment) {
			log.Tracef("movement screen [%s] completed for user [%s]: %s risk", a.ID, a.UserID, a.RiskLevel)
		},
	)
	screenHandler := movescreen.NewHandler(screenService, s.metricsManager)
	r.HandleFunc("/movescreen", screenHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-movescreen")
	r.HandleFunc("/movescreen/{id}", screenHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-movescreen")
	r.HandleFunc("/movescreen/{id}/report", screenHandler.HandleReport).Methods("GET", "OPTIONS").Name("movescreen-report")
	r.HandleFunc("/movescreen/user/{userId}", screenHandler.HandleList).Methods("GET", "OPTIONS").Name("list-movescreens")

	progressionService := progression.NewService(
		s.catalog,
		progression.NewRepo(s.dbPool),
		progression.NewTracker(),
	)
	progressionHandler := progression.NewHandler(progressionService, s.metricsManager)
	r.HandleFunc("/progression", progressionHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-progression")
	r.HandleFunc("/progression/{id}", progressionHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-progression")
	r.HandleFunc("/progression/user/{userId}", progressionHandler.HandleList).Methods("GET", "OPTIONS").Name("list-progressions")
	r.HandleFunc("/progression/{id}/{transition}", progressionHandler.HandleTransition).Methods("POST", "OPTIONS").Name("progression-transition")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.tipsManager, s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
