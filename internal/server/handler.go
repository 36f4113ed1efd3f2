package server

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-userform/internal/metrics"
	"github.com/goliatone/go-userform/internal/session"
	"github.com/goliatone/go-userform/pkg/form"
	"github.com/goliatone/go-userform/pkg/model"
	"github.com/goliatone/go-userform/pkg/render"
)

// CookieName carries the visitor's session id.
const CookieName = "userform_session"

// Page actions posted by the form buttons.
const (
	ActionSubmit  = "submit"
	ActionRefresh = "refresh"
)

// DismissPath is where the success notice close button posts.
const DismissPath = "/dismiss"

// Handler wires the form endpoints to per-visitor controllers.
type Handler struct {
	form         model.FormModel
	renderer     render.Renderer
	sessions     *session.Store
	metrics      *metrics.Metrics
	logger       *zap.SugaredLogger
	theme        *theme.RendererConfig
	dismissAfter time.Duration
	assetPrefix  string
	assets       fs.FS
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		if m != nil {
			h.metrics = m
		}
	}
}

// WithTheme sets the resolved theme passed to the renderer.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(h *Handler) {
		h.theme = cfg
	}
}

// WithDismissAfter tells the page how long the success notice stays up. It
// should match the controllers' delay.
func WithDismissAfter(d time.Duration) Option {
	return func(h *Handler) {
		h.dismissAfter = d
	}
}

// WithAssets serves files under prefix.
func WithAssets(prefix string, files fs.FS) Option {
	return func(h *Handler) {
		h.assetPrefix = strings.TrimRight(prefix, "/")
		h.assets = files
	}
}

// New constructs the handler.
func New(formModel model.FormModel, renderer render.Renderer, sessions *session.Store, options ...Option) *Handler {
	h := &Handler{
		form:         formModel,
		renderer:     renderer,
		sessions:     sessions,
		logger:       zap.NewNop().Sugar(),
		dismissAfter: form.DefaultDismissAfter,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	if h.metrics == nil {
		h.metrics = metrics.New()
	}
	return h
}

// Routes returns a router with the middleware stack and every endpoint.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	h.Register(r)
	return r
}

// Register mounts the endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandlePage)
	r.Post("/", h.HandleSubmit)
	r.Post(DismissPath, h.HandleDismiss)
	r.Post("/fields/{name}", h.HandleField)
	r.Get("/state", h.HandleState)
	r.Get("/healthz", h.HandleHealth)
	r.Handle("/metrics", h.metrics.Handler())
	if h.assets != nil && h.assetPrefix != "" {
		r.Handle(h.assetPrefix+"/*", http.StripPrefix(h.assetPrefix, http.FileServer(http.FS(h.assets))))
	}
}

// HandlePage handles GET / requests.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	controller := h.controller(w, r)
	h.renderPage(w, r, controller, http.StatusOK)
}

// HandleSubmit handles POST / requests for both page buttons.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	controller := h.controller(w, r)

	switch action := r.PostFormValue("action"); action {
	case ActionRefresh:
		controller.Reset()
		h.metrics.Resets.Inc()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case "", ActionSubmit:
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	if err := h.applyValues(controller, r.PostForm); err != nil {
		h.logger.Warnw("form values rejected",
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		h.renderPage(w, r, controller, http.StatusUnprocessableEntity)
		return
	}

	errs, err := controller.Submit(r.Context())
	if err != nil {
		h.logger.Warnw("submit aborted", "request_id", middleware.GetReqID(r.Context()), "error", err)
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	h.metrics.ObserveSubmission(errs.Valid())

	status := http.StatusOK
	if !errs.Valid() {
		status = http.StatusUnprocessableEntity
	}
	h.renderPage(w, r, controller, status)
}

// HandleDismiss handles POST /dismiss requests.
func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	controller := h.controller(w, r)
	if controller.SubmitSuccess() {
		h.metrics.Dismissals.Inc()
	}
	controller.DismissSuccess()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleField handles POST /fields/{name}: a single edit, or a blur when no
// value is posted. Hobbies take value plus checked (default true).
func (h *Handler) HandleField(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !form.IsField(name) {
		writeError(w, http.StatusNotFound, "unknown_field", "no field named "+strconv.Quote(name))
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "malformed form body")
		return
	}
	controller := h.controller(w, r)

	var err error
	switch {
	case !r.PostForm.Has("value"):
		err = controller.Touch(name)
	case name == form.FieldHobbies:
		checked, perr := parseChecked(r.PostFormValue("checked"))
		if perr != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "checked must be a boolean")
			return
		}
		err = controller.SetHobby(r.PostFormValue("value"), checked)
	default:
		err = controller.SetField(name, r.PostFormValue("value"))
	}
	h.metrics.ObserveFieldUpdate(name, err)

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, controller.Snapshot())
	case errors.Is(err, form.ErrInvalidOption):
		writeError(w, http.StatusUnprocessableEntity, "invalid_option", err.Error())
	case errors.Is(err, form.ErrUnknownField):
		writeError(w, http.StatusNotFound, "unknown_field", err.Error())
	default:
		h.logger.Errorw("field update failed", "field", name, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

// HandleState handles GET /state requests.
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	controller := h.controller(w, r)
	writeJSON(w, http.StatusOK, controller.Snapshot())
}

// HandleHealth handles GET /healthz requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// controller resolves the visitor's controller, issuing a new session cookie
// when the request carries none or an expired one.
func (h *Handler) controller(w http.ResponseWriter, r *http.Request) *form.Controller {
	var id string
	if cookie, err := r.Cookie(CookieName); err == nil {
		id = cookie.Value
	}
	newID, controller, created := h.sessions.Resolve(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    newID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return controller
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, controller *form.Controller, status int) {
	body, err := h.renderer.Render(r.Context(), h.form, render.RenderOptions{
		View:         controller.Snapshot(),
		DismissAfter: h.dismissAfter,
		DismissURL:   DismissPath,
		Theme:        h.theme,
	})
	if err != nil {
		h.logger.Errorw("render page failed",
			"request_id", middleware.GetReqID(r.Context()),
			"renderer", h.renderer.Name(),
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", h.renderer.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func parseChecked(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "on":
		return true, nil
	case "off":
		return false, nil
	}
	return strconv.ParseBool(raw)
}
