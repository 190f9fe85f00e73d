package loginascustomer

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// LoginPath is the admin route of the action.
const LoginPath = "/admin/loginascustomer/login/login"

// SessionCommitter writes the request's session cookie.
type SessionCommitter interface {
	Commit(w http.ResponseWriter, r *http.Request) error
}

type HTTPHandler struct {
	handler  *Handler
	sessions SessionCommitter
	logger   *slog.Logger
}

func NewHTTPHandler(handler *Handler, sessions SessionCommitter, logger *slog.Logger) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{handler: handler, sessions: sessions, logger: logger}
}

// Register mounts the action on r behind middlewares. Only POST is routed.
func (h *HTTPHandler) Register(r chi.Router, middlewares ...func(http.Handler) http.Handler) {
	r.With(middlewares...).Post(LoginPath, h.Login)
}

// requestParams reads form values, falling back to the query string.
type requestParams struct {
	r *http.Request
}

func (p requestParams) Param(name string) string {
	return p.r.FormValue(name)
}

func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	envelope, err := h.handler.Handle(r.Context(), requestParams{r: r})
	if err != nil {
		h.logger.Error("Login as customer failed",
			"error", err,
			"customer_id", r.FormValue("customer_id"),
			"entity_id", r.FormValue("entity_id"))
		h.fail(w, r)
		return
	}

	if err := h.sessions.Commit(w, r); err != nil {
		h.logger.Error("Failed to save admin session", "error", err)
		h.fail(w, r)
		return
	}

	render.JSON(w, r, envelope)
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, map[string]string{"error": "Internal server error"})
}
