package handlers

import (
	"net/http"
	"strconv"

	"ifphub/helper"
	"ifphub/models"
	"ifphub/services"

	"github.com/gin-gonic/gin"
)

type NoticiaHandler struct {
	noticiaService services.NoticiaService
	searchService  services.SearchService
	Helper         *helper.HTTPHelper
}

func NewNoticiaHandler(noticiaService services.NoticiaService, searchService services.SearchService, h *helper.HTTPHelper) *NoticiaHandler {
	return &NoticiaHandler{
		noticiaService: noticiaService,
		searchService:  searchService,
		Helper:         h,
	}
}

// GetNoticias returns the full list as a bare array, the shape the
// search and listing pages consume.
func (h *NoticiaHandler) GetNoticias(c *gin.Context) {
	noticias, err := h.noticiaService.GetNoticias()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, noticias)
}

func (h *NoticiaHandler) GetNoticia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.Helper.SendErrorMessage(c, http.StatusBadRequest, "Identificador de noticia invalido")
		return
	}

	detalle, svcErr := h.noticiaService.GetNoticia(uint(id))
	if svcErr != nil {
		h.Helper.SendError(c, svcErr)
		return
	}

	h.Helper.SendData(c, detalle)
}

func (h *NoticiaHandler) CreateNoticia(c *gin.Context) {
	var req models.CreateNoticiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendErrorMessage(c, http.StatusBadRequest, "Cuerpo de la peticion invalido")
		return
	}

	noticia, err := h.noticiaService.CreateNoticia(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": noticia})
}

func (h *NoticiaHandler) Search(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendErrorMessage(c, http.StatusBadRequest, "Parámetros inválidos.")
		return
	}

	response, err := h.searchService.Search(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendData(c, response)
}
