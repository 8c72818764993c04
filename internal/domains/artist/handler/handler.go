package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/domains/artist/service"
	"tattoo-studio/internal/shared/response"
)

type ArtistHandler struct {
	service service.ServiceInterface
}

func NewArtistHandler(service service.ServiceInterface) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// List xử lý GET /artists/
func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.service.ListArtists(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("list artists failed")
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, "", artists)
}
