package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/domains/tattoorequest/model"
	"tattoo-studio/internal/domains/tattoorequest/service"
	"tattoo-studio/internal/infrastructure/storage"
	"tattoo-studio/internal/shared/middleware"
	"tattoo-studio/internal/shared/response"
)

const referenceImageField = "reference_image"

type TattooRequestHandler struct {
	service service.ServiceInterface
}

func NewTattooRequestHandler(service service.ServiceInterface) *TattooRequestHandler {
	return &TattooRequestHandler{service: service}
}

// NewForm xử lý GET /requests/new/
func (h *TattooRequestHandler) NewForm(c *gin.Context) {
	response.Success(c, http.StatusOK, "", gin.H{"help": model.FormHelp})
}

// Create xử lý POST /requests/new/ (multipart/form-data hoặc JSON)
func (h *TattooRequestHandler) Create(c *gin.Context) {
	// Step 1: Get caller
	clientID, err := middleware.CurrentUserID(c)
	if err != nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	// Step 2: Bind body + optional reference image
	var req model.CreateRequest
	var upload *model.Upload
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBind(&req); err != nil {
			response.BadRequest(c, "Invalid form data")
			return
		}
		upload, err = readUpload(c)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Step 3: Call service
	created, err := h.service.Create(c.Request.Context(), clientID, req, upload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/requests/%s/", created.ID))
	response.Success(c, http.StatusCreated, model.MsgCreated, created)
}

// Detail xử lý GET /requests/:id/
func (h *TattooRequestHandler) Detail(c *gin.Context) {
	clientID, err := middleware.CurrentUserID(c)
	if err != nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	// id không parse được thì không thể trỏ tới row nào
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), clientID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", detail)
}

// readUpload đọc tối đa MaxSize+1 bytes để service phát hiện file quá lớn
func readUpload(c *gin.Context) (*model.Upload, error) {
	fh, err := c.FormFile(referenceImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid %s upload", referenceImageField)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open %s", referenceImageField)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.DefaultMaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("cannot read %s", referenceImageField)
	}

	return &model.Upload{Filename: fh.Filename, Data: data}, nil
}

func (h *TattooRequestHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ValidationFailed(c, verrs)
	case errors.Is(err, model.ErrTattooRequestNotFound):
		response.NotFound(c)
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("tattoo request handler error")
		response.InternalServerError(c)
	}
}
