package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"klaver-telraam/internal/app/history"
	"klaver-telraam/internal/game"

	"github.com/go-chi/chi/v5"
)

type HistoryHandlers struct {
	svc       *history.Service
	pageLimit int
}

func NewHistoryHandlers(svc *history.Service, pageLimit int) *HistoryHandlers {
	if pageLimit < 1 {
		pageLimit = 50
	}
	return &HistoryHandlers{svc: svc, pageLimit: pageLimit}
}

func (h *HistoryHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r, h.pageLimit)
		resp, err := h.svc.List(r.Context(), limit, offset)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *HistoryHandlers) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Stats(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *HistoryHandlers) Export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := h.svc.Export(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="telraam-history.json"`)
		WriteJSON(w, recs)
	}
}

func (h *HistoryHandlers) Import() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var recs []game.HistoryRecord
		if err := json.NewDecoder(r.Body).Decode(&recs); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Import(r.Context(), recs)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *HistoryHandlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h.svc.Delete(r.Context(), chi.URLParam(r, "record_id"))
		if err != nil {
			switch {
			case errors.Is(err, history.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, history.ErrNotFound):
				WriteHTTPError(w, http.StatusNotFound, "not_found")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
