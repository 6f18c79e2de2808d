// AngelaMos | 2026
// handler.go

package export

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
	"github.com/carterperez-dev/templates/casetrail/internal/middleware"
	"github.com/carterperez-dev/templates/casetrail/internal/timeline"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	requireAuth func(http.Handler) http.Handler,
) {
	r.With(requireAuth).Get("/export/{case_id}", h.Export)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	caseID, ok := timeline.CaseIDParam(w, r)
	if !ok {
		return
	}

	report, err := h.service.ExportCase(r.Context(), middleware.GetPrincipal(r.Context()), caseID)
	if err != nil {
		core.WriteServiceError(w, err, "case")
		return
	}

	if download, _ := strconv.ParseBool(r.URL.Query().Get("download")); download {
		w.Header().Set(
			"Content-Disposition",
			fmt.Sprintf(`attachment; filename="case-%d-timeline.json"`, caseID),
		)
	}

	core.OK(w, report)
}
