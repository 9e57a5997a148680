package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-timeoff/internal/adapters/apiservice"
)

const maxBodyBytes = 1 << 20

func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeResponse はエンベロープの Status を HTTP ステータスとしても返します。
func writeResponse[T any](h *Handler, w http.ResponseWriter, r *http.Request, resp apiservice.Response[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to write response",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	message := "Invalid request body"

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		message = validationErrors[0].Translate(h.translator)
	}

	writeResponse(h, w, r, apiservice.Response[any]{Error: message, Status: http.StatusBadRequest})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request) {
	writeResponse(h, w, r, apiservice.Response[any]{Error: "Internal server error", Status: http.StatusInternalServerError})
}

func trimAll(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}
