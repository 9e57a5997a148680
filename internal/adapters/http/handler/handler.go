package handler

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-timeoff/internal/adapters/apiservice"
)

// SessionHeader はブラウザごとのセッション ID を運ぶヘッダーです。
const SessionHeader = "X-Session-ID"

// Handler は結果エンベロープを JSON として返す HTTP アダプタです。
type Handler struct {
	api        *apiservice.Service
	validate   *validator.Validate
	translator ut.Translator
	logger     *zap.Logger

	Mux *chi.Mux
}

// New は Handler を生成しルーティングを登録します。
func New(api *apiservice.Service, logger *zap.Logger) (*Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("http: register translations: %w", err)
	}

	h := &Handler{
		api:        api,
		validate:   validate,
		translator: trans,
		logger:     logger.Named("http"),
		Mux:        chi.NewRouter(),
	}
	h.registerRoutes()
	return h, nil
}

// ServeHTTP は Mux に委譲します。
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Mux.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.Mux.Use(middleware.RequestID)
	h.Mux.Use(h.accessLog)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.session)

	h.Mux.Get("/healthz", h.Health)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Get("/me", h.GetCurrentUser)
			r.Get("/{id}", h.GetUser)
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Post("/switch", h.SwitchUser)
		})

		r.Route("/timeoff", func(r chi.Router) {
			r.Get("/", h.ListRequests)
			r.Post("/", h.CreateRequest)
			r.Get("/board", h.GetBoard)
			r.Get("/{id}", h.GetRequest)
			r.Patch("/{id}", h.UpdateRequestStatus)
		})
	})
}
