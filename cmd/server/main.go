package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcAdapter "github.com/quentinrf/plant-monitor/services/lux-service/internal/adapters/grpc"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/adapters/httpapi"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/adapters/memory"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/adapters/redis"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/adapters/sqlite"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/catalog"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/ports"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/report"
	"github.com/quentinrf/plant-monitor/services/lux-service/pkg/tlsconfig"
)

func main() {
	// Read configuration from environment
	config := loadConfig()

	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(config.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("starting lux service")

	// Load lighting data
	var data *catalog.Data
	var err error
	if config.CatalogPath != "" {
		data, err = catalog.LoadFile(config.CatalogPath)
	} else {
		data, err = catalog.Default()
	}
	if err != nil {
		log.Fatal().Err(err).Str("path", config.CatalogPath).Msg("failed to load lighting data")
	}
	log.Info().
		Int("fixtures", len(data.Catalog.All())).
		Int("presets", len(data.Presets)).
		Msg("loaded lighting data")

	// Initialize store
	store := openStore(config)
	defer store.Close()

	lib := ports.NewLibrary(store)
	workspaces := ports.NewWorkspaces(data, lib, config.WorkspaceTTL)

	// Configure TLS if certificates are provided
	var serverOpts []grpc.ServerOption
	if config.TLSCert != "" {
		tlsCfg, err := tlsconfig.LoadServerTLS(config.TLSCert, config.TLSKey, config.TLSCA)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Msg("mTLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set, starting without TLS (dev mode only)")
	}

	// Create gRPC server
	grpcServer := grpc.NewServer(serverOpts...)
	grpcAdapter.RegisterLuxServiceServer(grpcServer, grpcAdapter.NewLuxServiceHandler(data))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(grpcAdapter.LuxService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	// Enable gRPC reflection for grpcurl testing
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", config.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}

	// Create HTTP server
	if config.LogLevel > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Handler:      httpapi.NewHandler(workspaces, report.NewFormatter(config.Locale)),
		AllowOrigins: config.AllowOrigins,
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if config.TLSCert != "" {
		httpTLS, err := tlsconfig.LoadHTTPServerTLS(config.TLSCert, config.TLSKey)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load HTTP TLS config")
		}
		httpServer.TLSConfig = httpTLS
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", config.Port).Msg("gRPC server listening")
		return grpcServer.Serve(listener)
	})

	g.Go(func() error {
		log.Info().Str("port", config.HTTPPort).Msg("HTTP server listening")
		var err error
		if httpServer.TLSConfig != nil {
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	// Evict idle workspaces
	g.Go(func() error {
		workspaces.Start(gctx, config.JanitorInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server...")

		healthServer.Shutdown()
		grpcServer.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server exited with error")
	}

	log.Info().Msg("server stopped")
}

func openStore(config Config) domain.Store {
	switch config.RepoType {
	case "sqlite":
		s, err := sqlite.NewStore(config.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("db_path", config.DBPath).Msg("failed to open SQLite database")
		}
		log.Info().Str("db_path", config.DBPath).Msg("initialized SQLite store")
		return s
	case "redis":
		s, err := redis.NewStore(config.RedisAddr, config.RedisPrefix)
		if err != nil {
			log.Fatal().Err(err).Str("addr", config.RedisAddr).Msg("failed to connect to Redis")
		}
		log.Info().Str("addr", config.RedisAddr).Str("prefix", config.RedisPrefix).Msg("initialized Redis store")
		return s
	default:
		log.Info().Msg("initialized in-memory store")
		return memory.NewStore()
	}
}

// minJanitorInterval bounds how often idle workspaces are swept
const minJanitorInterval = time.Second

// Config holds application configuration
type Config struct {
	Port            string
	HTTPPort        string
	RepoType        string // "memory" | "sqlite" | "redis"
	DBPath          string // SQLite database file path (used when RepoType=sqlite)
	RedisAddr       string
	RedisPrefix     string
	CatalogPath     string // lighting data file; empty uses the embedded one
	WorkspaceTTL    time.Duration
	JanitorInterval time.Duration
	TLSCert         string // path to this service's certificate
	TLSKey          string // path to this service's private key
	TLSCA           string // path to the CA certificate
	LogLevel        zerolog.Level
	Locale          string
	AllowOrigins    []string
}

// loadConfig reads configuration from environment variables
func loadConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "50051"
	}

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	repoType := os.Getenv("REPO_TYPE")
	if repoType == "" {
		repoType = "memory"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./lux.db"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisPrefix := os.Getenv("REDIS_PREFIX")
	if redisPrefix == "" {
		redisPrefix = "lux:"
	}

	workspaceTTL := 30 * time.Minute
	if ttlStr := os.Getenv("WORKSPACE_TTL"); ttlStr != "" {
		if d, err := time.ParseDuration(ttlStr); err == nil && d > 0 {
			workspaceTTL = d
		}
	}

	janitorInterval := time.Minute
	if workspaceTTL < 2*janitorInterval {
		janitorInterval = max(workspaceTTL/2, minJanitorInterval)
	}

	logLevel := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		logLevel = lvl
	}

	locale := os.Getenv("LOCALE")
	if locale == "" {
		locale = "en"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:            port,
		HTTPPort:        httpPort,
		RepoType:        repoType,
		DBPath:          dbPath,
		RedisAddr:       redisAddr,
		RedisPrefix:     redisPrefix,
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		WorkspaceTTL:    workspaceTTL,
		JanitorInterval: janitorInterval,
		TLSCert:         os.Getenv("TLS_CERT"),
		TLSKey:          os.Getenv("TLS_KEY"),
		TLSCA:           os.Getenv("TLS_CA"),
		LogLevel:        logLevel,
		Locale:          locale,
		AllowOrigins:    origins,
	}
}
