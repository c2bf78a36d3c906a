package health

import (
	"net/http"

	"inn/infras/postgres"
	"inn/shared/cache"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	db    *postgres.Connection
	cache cache.RedisCache
}

func New(db *postgres.Connection, cache cache.RedisCache) Handler {
	return Handler{
		db:    db,
		cache: cache,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Health)
	})
}

// Health reports service liveness and dependency reachability.
// @Summary Health check
// @Description Report liveness of the service and its backing stores.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service status"
// @Router /v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"service":  "ok",
		"postgres": "ok",
		"redis":    "ok",
	}

	if err := h.db.Write.PingContext(r.Context()); err != nil {
		status["postgres"] = "unreachable"
	}

	if err := h.cache.Ping(r.Context()); err != nil {
		status["redis"] = "unreachable"
	}

	response.WithJSON(w, http.StatusOK, status)
}
