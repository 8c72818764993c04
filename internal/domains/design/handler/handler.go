package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/domains/design/service"
	"tattoo-studio/internal/shared/middleware"
	"tattoo-studio/internal/shared/response"
)

type DesignHandler struct {
	service service.ServiceInterface
}

func NewDesignHandler(service service.ServiceInterface) *DesignHandler {
	return &DesignHandler{service: service}
}

// List xử lý GET /designs/
func (h *DesignHandler) List(c *gin.Context) {
	clientID, err := middleware.CurrentUserID(c)
	if err != nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	designs, err := h.service.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("list designs failed")
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, "", designs)
}
