package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/checkout"
	h "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/fjod/go_storefront/internal/orders"
)

type Config struct {
	HTTPPort        string
	CatalogDBPath   string
	MigrationsPath  string
	RedisAddr       string
	KafkaBrokers    string
	PaymentDelay    time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		CatalogDBPath:   getEnv("CATALOG_DB_PATH", "storefront.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "migrations"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		PaymentDelay:    2 * time.Second,
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	// Catalog
	repo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("failed to open catalog database: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(ctx, repo)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	log.Printf("catalog loaded: %d products", cat.Len())

	// Cart store: redis when configured, otherwise a single-instance memory store
	var store cart.Store = cart.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer client.Close()
		store = cart.NewRedisStore(client)
		log.Printf("cart store: redis at %s", cfg.RedisAddr)
	}

	notifier := notify.LogNotifier{}
	cartService := cart.NewService(store, notifier)

	// Order publication: kafka when configured, otherwise tickets on the log
	var writer orders.Writer = orders.LogWriter{}
	if cfg.KafkaBrokers != "" {
		writer = orders.NewKafkaWriter(strings.Split(cfg.KafkaBrokers, ",")...)
		log.Printf("order outbox: kafka at %s", cfg.KafkaBrokers)
	}
	outbox := orders.NewOutbox(writer)
	go outbox.Run(ctx)

	gateway := checkout.NewBreakerGateway(checkout.NewSimulatedGateway(cfg.PaymentDelay))
	checkoutService := checkout.NewService(cartService, gateway, outbox, notifier)

	productHandler := h.NewProductHandler(cat)
	cartHandler := h.NewCartHandler(cartService, cat, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(checkoutService, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/featured", productHandler.Featured)
			r.Get("/facets", productHandler.Facets)
			r.Get("/{product_id}", productHandler.Get)
			r.Get("/{product_id}/related", productHandler.Related)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})
		r.Post("/checkout", checkoutHandler.Submit)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if n := outbox.Pending(); n > 0 {
		log.Printf("%d orders still pending publication", n)
	}

	log.Println("server exited")
}
