package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stridewell/storefront-backend/api/controllers"
	"github.com/stridewell/storefront-backend/api/middleware"
	"github.com/stridewell/storefront-backend/internal/cart"
	"github.com/stridewell/storefront-backend/internal/catalog"
	"github.com/stridewell/storefront-backend/internal/images"
	"github.com/stridewell/storefront-backend/internal/orders"
	"github.com/stridewell/storefront-backend/internal/users"
	"github.com/stridewell/storefront-backend/pkg/config"
	"github.com/stridewell/storefront-backend/pkg/db"
	"github.com/stridewell/storefront-backend/pkg/logger"
	"github.com/stridewell/storefront-backend/pkg/metrics"
	"github.com/stridewell/storefront-backend/pkg/redis"
)

// Deps carries everything the router wires together.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	DB      db.Pinger
	Redis   *redis.Client
	Metrics *metrics.HTTPMetrics
	// Registry backs the /metrics endpoint; nil disables it.
	Registry *prometheus.Registry

	Catalog catalog.Service
	Images  *images.Service
	Cart    cart.Service
	Orders  orders.Service
	Users   users.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
	)

	loginLimit := passthrough
	registerLimit := passthrough
	if deps.Redis != nil {
		loginPolicy := middleware.NewAuthRateLimitPolicy(
			"login",
			cfg.AuthRateLimit.LoginWindow,
			cfg.AuthRateLimit.LoginIPLimit,
			cfg.AuthRateLimit.LoginEmailLimit,
		)
		registerPolicy := middleware.NewAuthRateLimitPolicy(
			"register",
			cfg.AuthRateLimit.RegisterWindow,
			cfg.AuthRateLimit.RegisterIPLimit,
			cfg.AuthRateLimit.RegisterEmailLimit,
		)
		loginLimit = middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)
		registerLimit = middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(deps.Catalog, logg))
		r.Get("/featured", controllers.FeaturedProducts(deps.Catalog, logg))
		r.Get("/categories", controllers.ProductCategories(deps.Catalog, logg))
		r.Get("/{productId}", controllers.GetProduct(deps.Catalog, logg))
		r.Get("/{productId}/related", controllers.RelatedProducts(deps.Catalog, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(registerLimit).Post("/register", controllers.AuthRegister(deps.Users, logg))
		r.With(loginLimit).Post("/login", controllers.AuthLogin(deps.Users, cfg.JWT, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Get("/me", controllers.AuthMe(deps.Users, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartItems(deps.Cart, logg))
			r.Post("/items", controllers.CartAdd(deps.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemove(deps.Cart, logg))
			r.Delete("/", controllers.CartClear(deps.Cart, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.CreateOrder(deps.Orders, logg))
			r.Get("/", controllers.ListOrders(deps.Orders, logg))
			r.Get("/{orderId}", controllers.GetOrder(deps.Orders, logg))
		})
	})

	r.Route("/api/admin/v1/products", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireAdmin(logg))

		r.Post("/", controllers.AdminCreateProduct(deps.Catalog, deps.Images, logg))
		r.Patch("/{productId}", controllers.AdminUpdateProduct(deps.Catalog, deps.Images, logg))
		r.Delete("/{productId}", controllers.AdminDeleteProduct(deps.Catalog, logg))
	})

	// Processed product images are served straight off disk.
	r.Handle(cfg.Media.PublicPrefix+"/*", http.StripPrefix(
		cfg.Media.PublicPrefix+"/",
		http.FileServer(http.Dir(cfg.Media.UploadDir)),
	))

	return r
}

func passthrough(next http.Handler) http.Handler {
	return next
}
