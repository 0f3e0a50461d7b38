package handlers

import (
	"net/http"

	"ifphub/helper"
	"ifphub/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService services.MediaService
	Helper       *helper.HTTPHelper
}

func NewMediaHandler(mediaService services.MediaService, h *helper.HTTPHelper) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, Helper: h}
}

// UploadImagen receives a multipart image and returns the URL to use
// as the imagen field of a new noticia. The creator gate runs as
// middleware before this handler.
func (h *MediaHandler) UploadImagen(c *gin.Context) {
	if h.mediaService == nil {
		h.Helper.SendErrorMessage(c, http.StatusServiceUnavailable, "Almacenamiento de imagenes no configurado")
		return
	}

	file, header, err := c.Request.FormFile("imagen")
	if err != nil {
		h.Helper.SendErrorMessage(c, http.StatusBadRequest, "Archivo 'imagen' requerido")
		return
	}
	defer file.Close()

	url, uploadErr := h.mediaService.UploadImagen(c.Request.Context(), header.Filename, file, header.Size)
	if uploadErr != nil {
		h.Helper.SendError(c, uploadErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
