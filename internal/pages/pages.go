// AngelaMos | 2026
// pages.go

package pages

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/casetrail/internal/communication"
	"github.com/carterperez-dev/templates/casetrail/internal/core"
	"github.com/carterperez-dev/templates/casetrail/internal/export"
	"github.com/carterperez-dev/templates/casetrail/internal/middleware"
	"github.com/carterperez-dev/templates/casetrail/internal/timeline"
	"github.com/carterperez-dev/templates/casetrail/internal/user"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageIndex            = "index.html"
	pageDashboard        = "dashboard.html"
	pageTimeline         = "timeline.html"
	pageTimelineEvent    = "timeline_event.html"
	pageCommunicationLog = "communication_log.html"
)

type Timelines interface {
	Dashboard(ctx context.Context, p core.Principal) (*timeline.Dashboard, error)
	Timeline(ctx context.Context, p core.Principal, caseID int64) (*timeline.Case, []timeline.Event, error)
	ListCases(ctx context.Context, p core.Principal) ([]timeline.Case, error)
}

type Communications interface {
	List(ctx context.Context, p core.Principal) ([]communication.Communication, error)
}

type Users interface {
	GetMe(ctx context.Context, p core.Principal) (*user.User, error)
}

// view is the data handed to every page template. Pages read the fields
// they need.
type view struct {
	Title           string
	User            *user.User
	Dashboard       *timeline.Dashboard
	Case            *timeline.Case
	Events          []timeline.Event
	Cases           []timeline.Case
	SelectedCase    int64
	Categories      []export.Category
	DefaultCategory string
	Communications  []communication.Communication
}

type Handler struct {
	timelines Timelines
	comms     Communications
	users     Users
	pages     map[string]*template.Template
	static    http.Handler
}

func NewHandler(timelines Timelines, comms Communications, users Users) (*Handler, error) {
	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	return &Handler{
		timelines: timelines,
		comms:     comms,
		users:     users,
		pages:     pages,
		static:    http.StripPrefix("/static/", http.FileServer(http.FS(assets))),
	}, nil
}

func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"date":     func(d core.Date) string { return d.Format("January 02, 2006") },
		"category": export.CategoryLabel,
		"yesno": func(b bool) string {
			if b {
				return "Yes"
			}
			return "No"
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{
		pageIndex,
		pageDashboard,
		pageTimeline,
		pageTimelineEvent,
		pageCommunicationLog,
	} {
		t, err := template.New(name).Funcs(funcs).ParseFS(
			templatesFS,
			"templates/base.html",
			"templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return pages, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/static/*", h.static.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequirePage("/"))

		r.Get("/dashboard", h.Dashboard)
		r.Get("/timeline/{case_id}", h.Timeline)
		r.Get("/timeline-event", h.TimelineEvent)
		r.Get("/communication-log", h.CommunicationLog)
	})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if middleware.GetPrincipal(r.Context()).IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	h.render(w, r, pageIndex, &view{Title: "Welcome"})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	v, ok := h.newView(w, r, "Dashboard")
	if !ok {
		return
	}

	dash, err := h.timelines.Dashboard(r.Context(), middleware.GetPrincipal(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v.Dashboard = dash

	h.render(w, r, pageDashboard, v)
}

// Timeline renders a case's events. Cases that are missing or owned by
// someone else send the visitor back to the dashboard.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	caseID, err := strconv.ParseInt(chi.URLParam(r, "case_id"), 10, 64)
	if err != nil || caseID <= 0 {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	v, ok := h.newView(w, r, "Timeline")
	if !ok {
		return
	}

	c, events, err := h.timelines.Timeline(r.Context(), middleware.GetPrincipal(r.Context()), caseID)
	if errors.Is(err, core.ErrNotFound) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	v.Title = c.CaseTitle
	v.Case = c
	v.Events = events

	h.render(w, r, pageTimeline, v)
}

func (h *Handler) TimelineEvent(w http.ResponseWriter, r *http.Request) {
	v, ok := h.newView(w, r, "Add Event")
	if !ok {
		return
	}

	cases, err := h.timelines.ListCases(r.Context(), middleware.GetPrincipal(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	v.Cases = cases
	v.Categories = export.Categories()
	v.DefaultCategory = timeline.DefaultCategory
	if id, err := strconv.ParseInt(r.URL.Query().Get("case_id"), 10, 64); err == nil {
		v.SelectedCase = id
	}

	h.render(w, r, pageTimelineEvent, v)
}

func (h *Handler) CommunicationLog(w http.ResponseWriter, r *http.Request) {
	v, ok := h.newView(w, r, "Communication Log")
	if !ok {
		return
	}

	comms, err := h.comms.List(r.Context(), middleware.GetPrincipal(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v.Communications = comms

	h.render(w, r, pageCommunicationLog, v)
}

// newView loads the signed-in user. A session whose user no longer exists
// is treated as signed out.
func (h *Handler) newView(w http.ResponseWriter, r *http.Request, title string) (*view, bool) {
	u, err := h.users.GetMe(r.Context(), middleware.GetPrincipal(r.Context()))
	if errors.Is(err, core.ErrNotFound) || errors.Is(err, core.ErrUnauthorized) {
		http.Redirect(w, r, "/", http.StatusFound)
		return nil, false
	}
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}

	return &view{Title: title, User: u}, true
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, v *view) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "base", v); err != nil {
		h.fail(w, r, fmt.Errorf("render %s: %w", name, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // best-effort response
	_, _ = buf.WriteTo(w)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "page failed",
		"path", r.URL.Path,
		"error", err,
		"request_id", middleware.GetRequestID(r.Context()),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
