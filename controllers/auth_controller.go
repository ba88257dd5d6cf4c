package controllers

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"tienda-hogar/config"
	"tienda-hogar/models"
	"tienda-hogar/session"
	"tienda-hogar/utils"
)

type AuthController struct {
	cfg      *config.Config
	sessions *session.Manager
}

func NewAuthController(cfg *config.Config, sessions *session.Manager) *AuthController {
	return &AuthController{cfg: cfg, sessions: sessions}
}

// @Summary Login page
// @Description Visiting the login page resets the session
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response
// @Router /login [get]
func (ctrl *AuthController) LoginPage(c *gin.Context) {
	s := ctrl.sessions.Get(c)
	ctrl.sessions.Reset(s)
	if err := ctrl.sessions.Save(c, s); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save session", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Ingrese usuario y contraseña"})
}

// @Summary Login
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param usuario formData string true "Admin username"
// @Param password formData string true "Admin password"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Usuario y contraseña son requeridos"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Usuario), []byte(ctrl.cfg.AdminUser)) == 1
	passOK, _ := utils.VerifyPassword(ctrl.cfg.AdminHash, req.Password)
	if !userOK || !passOK {
		c.JSON(401, gin.H{"success": false, "message": "Usuario o contraseña incorrectos"})
		return
	}

	token, err := utils.GenerateToken([]byte(ctrl.cfg.JWTSecret), req.Usuario, ctrl.cfg.JWTExpiry)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate token", "error": err.Error()})
		return
	}

	s := ctrl.sessions.Get(c)
	ctrl.sessions.Reset(s)
	ctrl.sessions.SetToken(s, token)
	if err := ctrl.sessions.Save(c, s); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save session", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    models.LoginResponse{Token: token, Usuario: req.Usuario},
	})
}

// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response
// @Router /logout [get]
func (ctrl *AuthController) Logout(c *gin.Context) {
	s := ctrl.sessions.Get(c)
	ctrl.sessions.ClearToken(s)
	if err := ctrl.sessions.Save(c, s); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save session", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Sesión cerrada"})
}
