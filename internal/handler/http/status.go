package http

import (
	"net/http"

	"github.com/usiverse/userd/internal/utils"
	"github.com/usiverse/userd/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{
		Status:  "ok",
		Name:    h.services.AppInfoService.Name(),
		Version: h.services.AppInfoService.Version(),
	}, http.StatusOK)
}
