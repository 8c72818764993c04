package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/domains/dashboard/service"
	"tattoo-studio/internal/shared/middleware"
	"tattoo-studio/internal/shared/response"
)

type DashboardHandler struct {
	service service.ServiceInterface
}

func NewDashboardHandler(service service.ServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get xử lý GET /
func (h *DashboardHandler) Get(c *gin.Context) {
	clientID, err := middleware.CurrentUserID(c)
	if err != nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	dashboard, err := h.service.Get(c.Request.Context(), clientID)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("dashboard error")
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, "", dashboard)
}
