package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"klaver-telraam/internal/app/score"
)

type GameHandlers struct {
	svc *score.Service
}

func NewGameHandlers(svc *score.Service) *GameHandlers {
	return &GameHandlers{svc: svc}
}

func (h *GameHandlers) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, h.svc.State())
	}
}

func (h *GameHandlers) Edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req score.EditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Edit(r.Context(), req)
		if err != nil {
			writeScoreError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *GameHandlers) IncrementBonus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req score.IncrementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.IncrementBonus(r.Context(), req)
		if err != nil {
			writeScoreError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *GameHandlers) SetName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req score.NameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.SetName(r.Context(), req)
		if err != nil {
			writeScoreError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *GameHandlers) NewGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.NewGame(r.Context())
		if err != nil {
			writeScoreError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func writeScoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, score.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, score.ErrArchiveFailed):
		WriteHTTPError(w, http.StatusBadGateway, "archive_failed")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
