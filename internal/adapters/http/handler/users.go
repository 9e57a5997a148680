package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ogurasousui/codex-timeoff/internal/adapters/apiservice"
	"github.com/ogurasousui/codex-timeoff/internal/core/session"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeResponse(h, w, r, apiservice.Response[string]{Data: "ok", Status: http.StatusOK})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeResponse(h, w, r, h.api.ListUsers(r.Context()))
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	writeResponse(h, w, r, h.api.GetCurrentUser(r.Context()))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	writeResponse(h, w, r, h.api.GetUser(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeResponse(h, w, r, h.api.CurrentUserID(r.Context()))
}

// SwitchUser はセッションの操作ユーザーを切り替えます。
// X-Session-ID がなければ新しいセッション ID を発行し、レスポンスヘッダーで返します。
func (h *Handler) SwitchUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId" validate:"required"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	trimAll(&req.UserID)
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ctx := r.Context()
	if r.Header.Get(SessionHeader) == "" {
		id := session.NewID()
		ctx = session.WithID(ctx, id)
		w.Header().Set(SessionHeader, id)
	}
	writeResponse(h, w, r, h.api.SwitchUser(ctx, req.UserID))
}
