package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/infra/adapters/service"
	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/infra/httpx"
	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/config"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/telemetry"
)

// localAddr runs the cart service inside the gateway process.
const localAddr = "local"

func main() {
	cfg, err := config.LoadGateway()
	telemetry.InitLogger(cfg.ServiceName)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	var client cartv1.CartClient
	if cfg.CartServiceAddr == localAddr {
		cartCfg, err := config.LoadCartService()
		if err != nil {
			slog.Error("invalid cart service configuration", "error", err)
			os.Exit(1)
		}
		if client, err = localClient(cartCfg); err != nil {
			slog.Error("failed to build local cart service", "error", err)
			os.Exit(1)
		}
		slog.Warn("running with an in-process cart service; carts are not persisted")
	} else {
		conn, err := grpc.NewClient(cfg.CartServiceAddr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		)
		if err != nil {
			slog.Error("could not connect to cart service", "addr", cfg.CartServiceAddr, "error", err)
			os.Exit(1)
		}
		defer conn.Close()
		client = cartv1.NewCartClient(conn)
	}

	handler := httpx.NewHandler(service.NewGRPCCartService(client), cfg.RequestTimeout)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpx.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("http shutdown error", "error", err)
		}
	}()

	slog.Info("api gateway running", "addr", cfg.HTTPAddr, "cart_service", cfg.CartServiceAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("http server failed", "error", err)
		os.Exit(1)
	}
}
