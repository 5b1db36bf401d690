package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"klaver-telraam/internal/app/history"
	"klaver-telraam/internal/app/score"
	"klaver-telraam/internal/config"
	"klaver-telraam/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig, scoreSvc *score.Service, histSvc *history.Service) *chi.Mux {
	gameHandlers := NewGameHandlers(scoreSvc)
	historyHandlers := NewHistoryHandlers(histSvc, cfg.HistoryPageSize)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", healthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Get("/game", gameHandlers.State())
		r.Post("/game/edits", gameHandlers.Edit())
		r.Post("/game/bonus-increments", gameHandlers.IncrementBonus())
		r.Post("/game/names", gameHandlers.SetName())
		r.Post("/game/new", gameHandlers.NewGame())

		r.Get("/history", historyHandlers.List())
		r.Get("/history/stats", historyHandlers.Stats())
		r.Get("/history/export", historyHandlers.Export())
		r.Post("/history/import", historyHandlers.Import())
		r.Delete("/history/{record_id}", historyHandlers.Delete())
	})

	return r
}

func healthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			WriteHTTPError(w, http.StatusServiceUnavailable, "db_unreachable")
			return
		}
		WriteJSON(w, map[string]any{"ok": true})
	}
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
