package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/casafurnish/storefront-gateway/internal/api/handlers"
	"github.com/casafurnish/storefront-gateway/internal/api/middleware"
	"github.com/casafurnish/storefront-gateway/internal/cache"
	"github.com/casafurnish/storefront-gateway/internal/clients"
	"github.com/casafurnish/storefront-gateway/internal/config"
	"github.com/casafurnish/storefront-gateway/internal/health"
	"github.com/casafurnish/storefront-gateway/internal/i18n"
	"github.com/casafurnish/storefront-gateway/internal/metrics"
	repository "github.com/casafurnish/storefront-gateway/internal/repositories"
	service "github.com/casafurnish/storefront-gateway/internal/services"
	"github.com/casafurnish/storefront-gateway/pkg/sendgrid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	if cfg.Tracing.Enabled {
		shutdownTracer, err := initTracer(context.Background(), cfg)
		if err != nil {
			slog.Error("❌ Error initializing tracing", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				slog.Warn("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
			}
		}()
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Upstream commerce API setup
	apiClient, err := clients.New(&cfg.Upstream)
	if err != nil {
		slog.Error("❌ Invalid upstream configuration", "error", err.Error())
		os.Exit(1)
	}

	// Locale bundles
	bundle, err := i18n.Load(cfg.Locale.Default)
	if err != nil {
		slog.Error("❌ Error loading locale bundles", "error", err.Error())
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	productClient := clients.NewProductClient(apiClient)
	categoryClient := clients.NewCategoryClient(apiClient)
	featuredClient := clients.NewFeaturedSectionClient(apiClient)
	orderClient := clients.NewOrderClient(apiClient)
	reviewClient := clients.NewReviewClient(apiClient)
	settingsClient := clients.NewSettingsClient(apiClient)
	authClient := clients.NewAuthClient(apiClient)

	cartRepo := repository.NewCartRepo(redisClient, cfg.Cache.CartTTL)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	notificationService := service.NewNotificationService(emailService, bundle, cfg.Store.Currency)
	cartService := service.NewCartService(cartRepo)
	checkoutService := service.NewCheckoutService(cartRepo, orderClient, notificationService, cfg.Checkout.ShippingFee, cfg.Checkout.CartClearDelay)
	authService := service.NewAuthService(authClient, rateLimitRepo)
	catalogService := service.NewCatalogService(productClient, categoryClient, featuredClient, reviewClient, settingsClient, catalogCache)
	adminService := service.NewAdminService(productClient, categoryClient, featuredClient, orderClient, reviewClient, settingsClient, catalogCache)

	cartHandler := handlers.NewCartHandler(cartService, catalogService, bundle)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, bundle)
	adminHandler := handlers.NewAdminHandler(adminService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)
	localeMiddleware := middleware.NewLocaleMiddleware(cfg.Locale.Default, cfg.Locale.SupportedList())

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("gateway initialized", slog.String("env", cfg.Env), slog.String("upstream", cfg.Upstream.BaseURL))

	// Setup router
	routerMux := http.NewServeMux()

	// Storefront
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}/reviews", catalogHandler.ListReviews())
	routerMux.HandleFunc("POST /api/v1/reviews", catalogHandler.CreateReview())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/featured-sections", catalogHandler.ListFeaturedSections())
	routerMux.HandleFunc("GET /api/v1/settings", catalogHandler.GetSettings())
	routerMux.HandleFunc("GET /api/v1/messages", catalogHandler.Messages())
	routerMux.HandleFunc("GET /api/v1/whatsapp-link", catalogHandler.InquiryLink())

	// Cart
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", cartHandler.RemoveItem())
	routerMux.HandleFunc("GET /api/v1/cart/whatsapp-link", cartHandler.WhatsAppLink())

	// Checkout
	routerMux.HandleFunc("POST /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.Checkout()))

	// Auth
	routerMux.HandleFunc("POST /api/v1/auth/login", authHandler.Login())
	routerMux.HandleFunc("POST /api/v1/auth/register", authHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/reset-password", authHandler.ResetPassword())
	routerMux.HandleFunc("GET /api/v1/me", authMiddleware.Authenticate(authHandler.Profile()))

	// Admin dashboard
	routerMux.HandleFunc("POST /api/v1/admin/products", authMiddleware.RequireAdmin(adminHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/admin/products/{id}", authMiddleware.RequireAdmin(adminHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/admin/products/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteProduct()))
	routerMux.HandleFunc("POST /api/v1/admin/categories", authMiddleware.RequireAdmin(adminHandler.CreateCategory()))
	routerMux.HandleFunc("PUT /api/v1/admin/categories/{id}", authMiddleware.RequireAdmin(adminHandler.UpdateCategory()))
	routerMux.HandleFunc("DELETE /api/v1/admin/categories/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteCategory()))
	routerMux.HandleFunc("POST /api/v1/admin/featured-sections", authMiddleware.RequireAdmin(adminHandler.CreateFeaturedSection()))
	routerMux.HandleFunc("PUT /api/v1/admin/featured-sections/{id}", authMiddleware.RequireAdmin(adminHandler.UpdateFeaturedSection()))
	routerMux.HandleFunc("DELETE /api/v1/admin/featured-sections/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteFeaturedSection()))
	routerMux.HandleFunc("GET /api/v1/admin/orders", authMiddleware.RequireAdmin(adminHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/admin/orders/stats", authMiddleware.RequireAdmin(adminHandler.OrderStats()))
	routerMux.HandleFunc("GET /api/v1/admin/orders/{id}", authMiddleware.RequireAdmin(adminHandler.GetOrder()))
	routerMux.HandleFunc("PUT /api/v1/admin/orders/{id}/status", authMiddleware.RequireAdmin(adminHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("DELETE /api/v1/admin/reviews/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteReview()))
	routerMux.HandleFunc("PUT /api/v1/admin/settings", authMiddleware.RequireAdmin(adminHandler.UpdateSettings()))

	// Operations
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining; metrics wraps the mux directly so it can read the
	// matched route pattern, and sits inside the locale middleware so the
	// locale prefix is already stripped.
	var handler http.Handler = metrics.Middleware(routerMux)
	handler = localeMiddleware.Resolve(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}

func initTracer(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Tracing.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("storefront-gateway"),
		)),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
