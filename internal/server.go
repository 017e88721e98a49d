package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymready/internal/config"
	"github.com/2beens/gymready/internal/db"
	"github.com/2beens/gymready/internal/gymstats/events"
	"github.com/2beens/gymready/internal/gymstats/ingestion"
	"github.com/2beens/gymready/internal/gymstats/progression"
	"github.com/2beens/gymready/internal/gymstats/recovery"
	"github.com/2beens/gymready/internal/gymstats/remote"
	"github.com/2beens/gymready/internal/middleware"
	"github.com/2beens/gymready/internal/telemetry/metrics"
	"github.com/2beens/gymready/internal/telemetry/tracing"
	"github.com/2beens/gymready/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	appSecret         string // shared with the app and with remote scoring peers
	versionInfo       string

	config     *config.Config
	dbPool     *pgxpool.Pool        // nil with the sqlite store
	sqliteRepo *recovery.SQLiteRepo // nil with the postgres store
	store      recovery.Store

	redisClient  *redis.Client // nil when rate limiting is not configured
	remoteClient *remote.Client
	emitter      *events.Emitter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AppSecret               string
	VersionInfo             string
	RedisPassword           string
	DBPassword              string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymready-backend")
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:       cfg,
		appSecret:    params.AppSecret,
		versionInfo:  params.VersionInfo,
		emitter:      events.NewEmitter(),
		otelShutdown: otelShutdown,
	}
	s.emitter.Subscribe(events.LogListener())

	var extraCollectors []prometheus.Collector
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		s.sqliteRepo, err = recovery.NewSQLiteRepo(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("new sqlite repo: %w", err)
		}
		s.store = s.sqliteRepo
		log.Debugf("using sqlite store: %s", cfg.SQLitePath)
	default:
		s.dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			Host:           cfg.PostgresHost,
			Port:           cfg.PostgresPort,
			Name:           cfg.PostgresDBName,
			User:           cfg.PostgresUser,
			Password:       params.DBPassword,
			SSLMode:        cfg.PostgresSSLMode,
			MaxConns:       cfg.PostgresMaxConns,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := s.dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		} else if err := db.EnsureSchema(ctx, s.dbPool); err != nil {
			return nil, fmt.Errorf("ensure db schema: %w", err)
		}

		s.store = recovery.NewRepo(s.dbPool)
		s.emitter.Subscribe(events.PersistListener(events.NewRepo(s.dbPool)))
		extraCollectors = append(extraCollectors, pgxpoolprometheus.NewCollector(
			s.dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	s.promRegistry = metrics.SetupPrometheus(extraCollectors...)
	s.metricsManager = metrics.NewManager("backend", "main", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)

	if cfg.RedisHost != "" {
		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if params.HoneycombTracingEnabled {
			s.redisClient.AddHook(redisotel.NewTracingHook())
		}
		if err := pingRedis(ctx, s.redisClient); err != nil {
			log.Errorf("--> %s", err)
		}
	} else {
		log.Warnln("redis not configured, write endpoints are not rate limited")
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.RemoteScoringTimeout(),
	}
	s.remoteClient = remote.NewClient(cfg.RemoteScoringURL, params.AppSecret, tracedHttpClient)
	if !s.remoteClient.Enabled() {
		log.Infoln("remote scoring not configured, using local scoring only")
	}

	return s, nil
}

// pingRedis only reports; a missing redis disables nothing, the rate limiter lets requests through.
func pingRedis(ctx context.Context, rdb redis.Cmdable) error {
	status := rdb.Ping(ctx)
	if err := status.Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	log.Debugf("redis ping: %s", status.Val())
	return nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/version", s.handleVersion).Methods("GET")

	engine := progression.NewEngine(
		s.metricsManager,
		progression.NewRemoteStrategy(s.remoteClient, s.metricsManager),
		progression.NewLocalStrategy(recovery.NewAdapter(s.store, s.config.RecentSessionsWindow())),
	)
	progressionHandler := progression.NewHandler(engine)
	r.HandleFunc(remote.PathSuggestion, progressionHandler.HandleGetSuggestion).Methods("GET", "OPTIONS").Name("progression-suggestion")

	ingestionHandler := ingestion.NewHandler(
		ingestion.NewService(s.remoteClient, s.store, s.emitter, s.metricsManager),
	)
	writeRouter := r.NewRoute().Subrouter()
	writeRouter.HandleFunc(remote.PathSurvey, ingestionHandler.HandleSubmitSurvey).Methods("POST", "OPTIONS").Name("recovery-survey")
	writeRouter.HandleFunc(remote.PathSession, ingestionHandler.HandleLogSession).Methods("POST", "OPTIONS").Name("recovery-session")
	if s.redisClient != nil {
		writeRouter.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"ingestion",
			s.config.WriteRateLimitAllowedMin,
			s.config.TrustedProxies,
			s.metricsManager,
		))
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.appSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainBody(s.config.MaxRequestBody()))

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, "gymready", http.StatusOK)
}

// handleHealth reports the service unhealthy when its store cannot be reached.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var err error
	switch {
	case s.dbPool != nil:
		err = s.dbPool.Ping(ctx)
	case s.sqliteRepo != nil:
		err = s.sqliteRepo.Ping(ctx)
	}
	if err != nil {
		log.Errorf("health check, store ping: %s", err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, "ok", http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, s.versionInfo, http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

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

	if s.sqliteRepo != nil {
		if err := s.sqliteRepo.Close(); err != nil {
			log.Errorf("failed to close sqlite db: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}
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
