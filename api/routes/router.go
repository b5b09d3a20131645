package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/martinvega/sneakhub-backend/api/controllers"
	cartcontrollers "github.com/martinvega/sneakhub-backend/api/controllers/cart"
	catalogcontrollers "github.com/martinvega/sneakhub-backend/api/controllers/catalog"
	"github.com/martinvega/sneakhub-backend/api/middleware"
	cartsvc "github.com/martinvega/sneakhub-backend/internal/cart"
	catalogsvc "github.com/martinvega/sneakhub-backend/internal/catalog"
	checkoutsvc "github.com/martinvega/sneakhub-backend/internal/checkout"
	"github.com/martinvega/sneakhub-backend/pkg/config"
	"github.com/martinvega/sneakhub-backend/pkg/logger"
	"github.com/martinvega/sneakhub-backend/pkg/metrics"
	"github.com/martinvega/sneakhub-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisP redis.Pinger,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalogsvc.Service,
	products cartcontrollers.ProductFetcher,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Get("/ping", controllers.PublicPing())

		r.Route("/v1/catalog", func(r chi.Router) {
			r.Get("/sneakers", catalogcontrollers.ListSneakers(catalogService, logg))
			r.Get("/flash-sales", catalogcontrollers.FlashSales(catalogService, logg))
			r.Get("/featured", catalogcontrollers.Featured(catalogService, logg))
			r.Get("/brands", catalogcontrollers.Brands(catalogService, logg))
			r.Get("/categories", catalogcontrollers.Categories(catalogService, logg))
			r.Get("/home", catalogcontrollers.Home(catalogService, logg))
			r.Get("/products/{productId}", catalogcontrollers.ProductListing(catalogService, logg))
		})

		r.Route("/v1/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.Fetch(cartService, logg))
			r.Post("/items", cartcontrollers.AddItem(cartService, products, logg))
			r.Patch("/items/{variantId}", cartcontrollers.SetQuantity(cartService, logg))
			r.Delete("/items/{variantId}", cartcontrollers.RemoveItem(cartService, logg))
			r.Post("/promo", cartcontrollers.ApplyPromo(cartService, logg))
			r.Delete("/promo", cartcontrollers.RemovePromo(cartService, logg))
		})

		r.Post("/checkout", controllers.Checkout(cartService, checkoutService, logg))
	})

	return r
}
