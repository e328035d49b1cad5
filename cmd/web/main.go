package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/config"
	"github.com/zhouzirui/nexusai/internal/handler"
	"github.com/zhouzirui/nexusai/internal/handler/page"
	"github.com/zhouzirui/nexusai/internal/logging"
	"github.com/zhouzirui/nexusai/internal/metrics"
	"github.com/zhouzirui/nexusai/internal/middleware"
	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/service/account"
	"github.com/zhouzirui/nexusai/internal/service/chat"
	"github.com/zhouzirui/nexusai/internal/service/contact"
	"github.com/zhouzirui/nexusai/internal/service/dashboard"
	"github.com/zhouzirui/nexusai/internal/service/reply"
	"github.com/zhouzirui/nexusai/internal/session"
	"github.com/zhouzirui/nexusai/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	siteStore := site.NewMemoryStore(site.Seed())

	replier, err := reply.NewService(ctx, logger, reply.NewSource(cfg.Interaction.ChatReplySeed), reply.StockReplies)
	if err != nil {
		logger.Fatal("failed to build reply chain", zap.Error(err))
	}

	chatService := chat.NewService(replier, chat.Config{
		ReplyDelay: cfg.Interaction.ChatReplyDelay,
		IdleTTL:    cfg.Session.IdleTTL,
		Location:   cfg.Site.Location(),
	}, logger)
	dashboardService := dashboard.NewService(cfg.Session.IdleTTL, logger)

	targets := []session.Sweepable{chatService.Sessions(), dashboardService.Sessions()}
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.PerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, cfg.Session.IdleTTL)
		targets = append(targets, limiter)
	} else {
		logger.Info("rate limiting disabled")
	}

	sweeper := session.NewSweeper(logger, cfg.Session.SweepInterval, targets...)
	sweeper.OnSwept(metrics.ObserveSweep)
	if err := sweeper.Start(); err != nil {
		logger.Fatal("failed to start session sweeper", zap.Error(err))
	}

	router := handler.NewRouter(handler.Deps{
		Log:       logger,
		Frame:     page.Frame{SiteName: cfg.Site.Name, Now: time.Now},
		Site:      siteStore,
		Chat:      chatService,
		Dashboard: dashboardService,
		Account:   account.NewService(cfg.Interaction.AuthDelay, logger),
		Contact:   contact.NewService(cfg.Interaction.ContactDelay, logger),
		Limiter:   limiter,
		Static:    web.Static(),
		Metrics:   cfg.Metrics.Enabled,
	})

	// Page sessions hold SSE streams open; closing them lets Shutdown drain those requests.
	startServer(ctx, logger, cfg.Server, router, chatService.Shutdown)

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	sweeper.Stop(stopCtx)
	logger.Info("server stopped")
}

func newServer(addr string, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func startServer(ctx context.Context, logger *zap.Logger, serverCfg config.ServerConfig, router http.Handler, onShutdown ...func()) {
	srv := newServer(serverCfg.Addr, router)
	for _, fn := range onShutdown {
		srv.RegisterOnShutdown(fn)
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		logger.Fatal("listen failed", zap.String("addr", srv.Addr), zap.Error(err))
	}

	logger.Info("NexusAI listening", zap.String("addr", ln.Addr().String()))
	if err := runServer(ctx, srv, ln, serverCfg.ShutdownTimeout); err != nil {
		logger.Error("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr := srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		if shutdownErr != nil {
			return fmt.Errorf("graceful shutdown: %w", shutdownErr)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
