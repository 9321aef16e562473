package handler

import (
	"net/http"

	"github.com/sakif/wellverse/internal/service"
)

// ResourceHandler serves the wellness resource library.
type ResourceHandler struct {
	resources *service.ResourceService
}

func NewResourceHandler(resources *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

// HandleList returns resources, optionally narrowed by topic and type.
//
// HTTP: GET /api/resources?topic=Anxiety&type=Article
func (h *ResourceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resources.List(r.Context(),
		r.URL.Query().Get("topic"),
		r.URL.Query().Get("type"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resources)
}
