package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/bootstrap"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/config"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/router"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/validator"
)

func main() {
	env := parseFlags()

	logger.Setup(env, os.Getenv("LOG_LEVEL"))
	slog.Info("서버 초기화 시작", "env", env)

	if err := run(env); err != nil {
		slog.Error("서버 초기화 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	flag.Parse()
	return *env
}

// run contains the main application logic
func run(env string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	slog.Info("환경 변수 로드 성공", "store", cfg.Store.Backend)

	// Connect to database only for the database store backend
	var db *database.DB
	if cfg.UsesDatabase() {
		db, err = database.New(cfg)
		if err != nil {
			return fmt.Errorf("데이터베이스 연결 실패: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("데이터베이스 종료 실패", "error", err)
			}
		}()
	}

	srv, err := setupServer(cfg, db)
	if err != nil {
		return err
	}

	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, db *database.DB) (*bootstrap.Server, error) {
	m := metrics.New()

	boot := bootstrap.NewBootstrap(cfg, m)
	ginEngine := boot.SetupEngine()

	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	router.Setup(ginEngine, cfg, db, m)

	slog.Info("서버 설정 완료",
		"env", cfg.App.Env,
		"store", cfg.Store.Backend,
		"metrics", cfg.Metrics.Enabled,
	)

	return bootstrap.New(cfg, ginEngine), nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("종료 신호 수신됨", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("서버 종료 중...", "addr", srv.Addr())
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return nil
	}
}
