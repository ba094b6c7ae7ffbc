package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-idle/internal/config"
	"github.com/KirkDiggler/rpg-idle/internal/content"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/handlers/game/v1alpha1"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

const shutdownTimeout = 30 * time.Second

var serverCfg = config.Default()

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the rpg-idle gRPC server. Every flag can also be set through an
environment variable named RPG_IDLE_<FLAG>, e.g. RPG_IDLE_REDIS_ADDR.`,
	RunE: runServer,
}

func init() {
	serverCfg.BindFlags(serverCmd.Flags())
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := config.ApplyEnv(cmd.Flags(), os.LookupEnv); err != nil {
		return err
	}
	// second pass fills what the process environment left unset
	lookup, err := config.EnvLookup(os.LookupEnv, serverCfg.EnvFile)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cmd.Flags(), lookup); err != nil {
		return err
	}
	if err := serverCfg.Validate(); err != nil {
		return err
	}
	slog.SetDefault(serverCfg.NewLogger(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules, err := loadRules(serverCfg.ContentPath)
	if err != nil {
		return err
	}

	repo, closeStore, err := openStore(ctx, &serverCfg)
	if err != nil {
		return err
	}
	defer closeStore()

	bus, err := gameevents.NewBus(&gameevents.BusConfig{EventBus: events.NewBus()})
	if err != nil {
		return err
	}
	journal, err := gameevents.NewJournal(&gameevents.JournalConfig{Bus: bus, Logger: slog.Default()})
	if err != nil {
		return err
	}
	journal.Start()
	defer func() {
		if err := journal.Stop(); err != nil {
			slog.Warn("Failed to stop event journal", "error", err)
		}
	}()

	gameService, err := game.NewOrchestrator(&game.Config{
		Repository:     repo,
		Rules:          rules,
		Publisher:      bus,
		EventLog:       journal,
		TickInterval:   serverCfg.TickInterval,
		SampleInterval: serverCfg.SampleInterval,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create game orchestrator")
	}

	gameHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		GameService: gameService,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create game handler")
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", serverCfg.Port))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to listen")
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterGameServiceServer(srv, gameHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", serverCfg.Port,
			"store", serverCfg.Store,
			"tick_interval", serverCfg.TickInterval,
		)
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
	case serveErr = <-errChan:
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	if err := gameService.Close(shutdownCtx); err != nil {
		slog.Error("Failed to end active sessions", "error", err)
	}
	return serveErr
}

func loadRules(path string) (*content.Rules, error) {
	pack, err := content.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range pack.Warnings() {
		slog.Warn("Content warning", "warning", w)
	}

	rules, err := pack.Compile()
	if err != nil {
		return nil, errors.Wrap(err, "invalid content")
	}
	return rules, nil
}

// logFunc adapts the grpc logging interceptor to slog; both use the same
// numeric levels
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
