// AngelaMos | 2026
// handler.go

package timeline

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
	"github.com/carterperez-dev/templates/casetrail/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	requireAuth func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/case", h.CreateCase)
		r.Get("/cases", h.ListCases)
		r.Delete("/case/{case_id}", h.DeleteCase)

		r.Post("/timeline_event", h.CreateEvent)
		r.Get("/timeline_events/{case_id}", h.ListEvents)

		r.Post("/document", h.AddDocument)
		r.Get("/documents/{case_id}", h.ListDocuments)
	})
}

func (h *Handler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req CreateCaseRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, err := h.service.CreateCase(r.Context(), middleware.GetPrincipal(r.Context()), req)
	if err != nil {
		core.WriteServiceError(w, err, "case")
		return
	}

	core.OK(w, CreateCaseResponse{Success: true, CaseID: c.ID})
}

func (h *Handler) ListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.service.ListCases(r.Context(), middleware.GetPrincipal(r.Context()))
	if err != nil {
		core.WriteServiceError(w, err, "case")
		return
	}

	core.OK(w, ToCaseResponseList(cases))
}

func (h *Handler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	caseID, ok := CaseIDParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.DeleteCase(r.Context(), middleware.GetPrincipal(r.Context()), caseID)
	if err != nil {
		core.WriteServiceError(w, err, "case")
		return
	}

	core.OK(w, DeleteCaseResponse{
		Success:          true,
		EventsDeleted:    res.EventsDeleted,
		DocumentsDeleted: res.DocumentsDeleted,
	})
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.decode(w, r, &req) {
		return
	}

	e, err := h.service.CreateEvent(r.Context(), middleware.GetPrincipal(r.Context()), req)
	if err != nil {
		core.WriteServiceError(w, err, "case")
		return
	}

	core.OK(w, CreateEventResponse{Success: true, EventID: e.ID})
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	caseID, ok := CaseIDParam(w, r)
	if !ok {
		return
	}

	events, err := h.service.ListEvents(r.Context(), middleware.GetPrincipal(r.Context()), caseID)
	if err != nil {
		core.WriteServiceError(w, err, "case")
		return
	}

	core.OK(w, ToEventResponseList(events))
}

func (h *Handler) AddDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if !h.decode(w, r, &req) {
		return
	}

	d, err := h.service.AddDocument(r.Context(), middleware.GetPrincipal(r.Context()), req)
	if err != nil {
		core.WriteServiceError(w, err, "case")
		return
	}

	core.OK(w, CreateDocumentResponse{
		Success:    true,
		DocumentID: d.ID,
		Filename:   d.Filename,
	})
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	caseID, ok := CaseIDParam(w, r)
	if !ok {
		return
	}

	docs, err := h.service.ListDocuments(r.Context(), middleware.GetPrincipal(r.Context()), caseID)
	if err != nil {
		core.WriteServiceError(w, err, "case")
		return
	}

	core.OK(w, ToDocumentResponseList(docs))
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !core.DecodeJSON(w, r, dst) {
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return false
	}
	return true
}

// CaseIDParam reads {case_id}. A malformed id answers 404 as an unknown
// route would.
func CaseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "case_id"), 10, 64)
	if err != nil || id <= 0 {
		core.NotFound(w, "case")
		return 0, false
	}
	return id, true
}
