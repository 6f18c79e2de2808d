// AngelaMos | 2026
// handler.go

package communication

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

		r.Post("/communication", h.Add)
		r.Get("/communications", h.List)
		r.Delete("/communication/{id}", h.Delete)
	})
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req CreateCommunicationRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.Add(r.Context(), middleware.GetPrincipal(r.Context()), req)
	if err != nil {
		core.WriteServiceError(w, err, "communication")
		return
	}

	core.OK(w, CreateCommunicationResponse{Success: true, CommunicationID: c.ID})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	comms, err := h.service.List(r.Context(), middleware.GetPrincipal(r.Context()))
	if err != nil {
		core.WriteServiceError(w, err, "communication")
		return
	}

	core.OK(w, ToCommunicationResponseList(comms))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		core.NotFound(w, "communication")
		return
	}

	if err := h.service.Delete(r.Context(), middleware.GetPrincipal(r.Context()), id); err != nil {
		core.WriteServiceError(w, err, "communication")
		return
	}

	core.OK(w, core.SuccessResponse{Success: true})
}
