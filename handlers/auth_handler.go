package handlers

import (
	"net/http"
	"strconv"

	"ifphub/helper"
	"ifphub/models"
	"ifphub/services"

	"github.com/gin-gonic/gin"
	validator "gopkg.in/go-playground/validator.v9"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendErrorMessage(c, http.StatusBadRequest, "Cuerpo de la peticion invalido")
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, verrs)
			return
		}
		h.Helper.SendErrorMessage(c, http.StatusBadRequest, "Cuerpo de la peticion invalido")
		return
	}

	usuario, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "usuario": usuario})
}

// GetRol answers the gate's role lookups: uid and sig travel as query
// params, the sig must decode back to the uid.
func (h *AuthHandler) GetRol(c *gin.Context) {
	uidRaw := c.Query("uid")
	sig := c.Query("sig")

	uid, err := strconv.ParseUint(uidRaw, 10, 32)
	if uidRaw == "" || sig == "" || err != nil || uid == 0 {
		h.Helper.SendErrorMessage(c, http.StatusBadRequest, "Parámetros inválidos.")
		return
	}

	if !h.authService.VerifySig(uint(uid), sig) {
		h.Helper.SendErrorMessage(c, http.StatusForbidden, "No autorizado.")
		return
	}

	rol, rolErr := h.authService.ResolveRol(uint(uid))
	if rolErr != nil {
		h.Helper.SendErrorMessage(c, http.StatusInternalServerError, "No se pudo obtener el rol.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rol": rol})
}
