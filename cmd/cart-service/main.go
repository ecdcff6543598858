package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/adapters/memory"
	redisadapter "github.com/jcmexdev/bookstore-cart/internal/cart-service/adapters/redis"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/app"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/cartlog"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/cartlog/sqlite"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/promo"
	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/cache"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/config"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.LoadCartService()
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

	promos := promo.Default()
	if cfg.PromoTablePath != "" {
		if promos, err = promo.LoadFile(cfg.PromoTablePath); err != nil {
			slog.Error("failed to load promo table", "path", cfg.PromoTablePath, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("promo table loaded", "codes", promos.Codes())

	// Without Redis the cart service keeps snapshots and idempotent replies
	// in process; state is lost on restart.
	var (
		snapshots app.Repository
		replays   cache.Cache
	)
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr, "cart")
		if err := cache.Ping(ctx, redisCache); err != nil {
			slog.Error("redis unavailable", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		snapshots = redisadapter.NewSnapshotRepository(redisCache, cfg.SnapshotTTL)
		replays = redisCache
	} else {
		slog.Warn("REDIS_ADDR not set, using in-memory cart storage")
		snapshots = memory.NewSnapshotRepository()
		replays = cache.NewMemoryCache("cart")
	}

	var journal cartlog.Repository = cartlog.Discard{}
	if cfg.JournalPath != "" {
		repo, err := sqlite.Open(cfg.JournalPath)
		if err != nil {
			slog.Error("failed to open cart journal", "path", cfg.JournalPath, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		journal = repo
	}

	svc, err := app.NewCartService(app.Deps{
		Catalog:     memory.NewStorefrontCatalog(),
		Promos:      promos,
		Pricing:     cfg.Pricing,
		Snapshots:   snapshots,
		Journal:     journal,
		Replays:     replays,
		ReplayTTL:   cfg.ReplayTTL,
		MaxQuantity: cfg.MaxQuantity,
	})
	if err != nil {
		slog.Error("failed to build cart service", "error", err)
		os.Exit(1)
	}

	addr := ":" + cfg.Port
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("failed to listen", "addr", addr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.TraceServerInterceptor()),
	)
	cartv1.RegisterCartServer(grpcServer, app.NewCartServer(svc))

	go func() {
		<-ctx.Done()
		slog.Info("shutting down cart service")
		grpcServer.GracefulStop()
	}()

	slog.Info("cart service gRPC running", "addr", addr,
		"free_shipping_threshold", cfg.Pricing.FreeShippingThreshold.String(),
		"tax_rate", cfg.Pricing.TaxRate.String(),
	)
	if err := grpcServer.Serve(lis); err != nil {
		slog.Error("failed to serve", "error", err)
		os.Exit(1)
	}
}
