package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/marketplace-auth/internal/api/grpc/context"
	"github.com/dtroode/marketplace-auth/internal/api/grpc/router"
	grpcServer "github.com/dtroode/marketplace-auth/internal/api/grpc/server"
	"github.com/dtroode/marketplace-auth/internal/audit"
	"github.com/dtroode/marketplace-auth/internal/config"
	"github.com/dtroode/marketplace-auth/internal/logger"
	"github.com/dtroode/marketplace-auth/internal/metrics"
	"github.com/dtroode/marketplace-auth/internal/model"
	"github.com/dtroode/marketplace-auth/internal/password"
	"github.com/dtroode/marketplace-auth/internal/permission"
	"github.com/dtroode/marketplace-auth/internal/repository/postgres"
	"github.com/dtroode/marketplace-auth/internal/repository/redis"
	"github.com/dtroode/marketplace-auth/internal/server"
	"github.com/dtroode/marketplace-auth/internal/service"
	storage "github.com/dtroode/marketplace-auth/internal/storage/minio"
	"github.com/dtroode/marketplace-auth/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	redisClient, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	hasher, err := password.NewArgon2(password.DefaultParams)
	if err != nil {
		logger.Fatal("failed to initialize password hasher", "error", err)
	}

	if cfg.Metrics.Enabled {
		provider, err := metrics.NewProvider(os.Stderr, cfg.Metrics.Interval)
		if err != nil {
			logger.Fatal("failed to initialize meter provider", "error", err)
		}
		otel.SetMeterProvider(provider)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed to flush metrics", "error", err)
			}
		}()
	}

	m, err := metrics.New(otel.Meter("marketplace-auth"))
	if err != nil {
		logger.Fatal("failed to initialize metrics", "error", err)
	}

	issuer := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTTL)
	ledger := service.NewLedger(postgres.NewRefreshTokenRepository(db), cfg.Session.RefreshTTL)
	resolver := permission.NewResolver(postgres.NewPermissionRepository(db))
	lockout := redis.NewLockoutCounter(redisClient, cfg.Session.LockoutThreshold, cfg.Session.LockoutDuration)

	opts := []service.SessionOption{
		service.WithMetrics(m),
		service.WithLockoutDuration(cfg.Session.LockoutDuration),
	}
	if cfg.Audit.Enabled {
		recorder, err := newIncidentRecorder(ctx, cfg.Audit, logger)
		if err != nil {
			logger.Fatal("failed to initialize incident archive", "error", err)
		}
		opts = append(opts, service.WithIncidentRecorder(recorder))
	}

	sessions := service.NewSession(
		postgres.NewUserRepository(db),
		ledger,
		resolver,
		issuer,
		hasher,
		lockout,
		logger,
		opts...,
	)

	grpcServer := registerGRPCServer(sessions, issuer, m, logger, fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func newIncidentRecorder(ctx context.Context, cfg config.Audit, logger *logger.Logger) (*audit.Recorder, error) {
	minioClient, err := storage.Dial(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL)
	if err != nil {
		return nil, err
	}
	archive, err := storage.NewClient(ctx, minioClient, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	return audit.NewRecorder(archive, logger), nil
}

func registerGRPCServer(
	sessions model.SessionService,
	issuer model.TokenIssuer,
	m *metrics.Metrics,
	logger *logger.Logger,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(sessions, issuer, grpcctx.NewManager(), m, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
