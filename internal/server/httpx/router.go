package httpx

import (
	"net/http"

	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the API routes. Only POST /api/recipes requires a bearer
// token.
func NewRouter(h *Handler, tokens TokenParser, metrics *Metrics, gatherer prometheus.Gatherer, logger logging.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	r.HandleFunc("/register", h.register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.login).Methods(http.MethodPost)

	r.HandleFunc("/api/recipes", h.listRecipes).Methods(http.MethodGet)
	r.HandleFunc("/api/recipes/search", h.searchRecipes).Methods(http.MethodGet)
	r.Handle("/api/recipes", RequireBearer(tokens)(http.HandlerFunc(h.addRecipe))).Methods(http.MethodPost)

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	l := logger.With("module", "http")
	return Chain(Logging(l), Recovery(l))(r)
}
