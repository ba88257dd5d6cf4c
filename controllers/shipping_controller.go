package controllers

import (
	"github.com/gin-gonic/gin"

	"tienda-hogar/models"
	"tienda-hogar/services"
	"tienda-hogar/session"
)

type ShippingController struct {
	sessions *session.Manager
}

func NewShippingController(sessions *session.Manager) *ShippingController {
	return &ShippingController{sessions: sessions}
}

// @Summary Estimate shipping
// @Description Quote shipping for the session cart by postal code. The
// quote is kept in the session until the cart changes.
// @Tags Shipping
// @Accept x-www-form-urlencoded
// @Produce json
// @Param cp formData string true "Postal code"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /calcular_envio [post]
func (ctrl *ShippingController) CalculateShipping(c *gin.Context) {
	var req models.ShippingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "El código postal es requerido"})
		return
	}

	s := ctrl.sessions.Get(c)
	cart := ctrl.sessions.Cart(s)

	quote := services.QuoteFor(cart, req.PostalCode)
	ctrl.sessions.SetQuote(s, quote)
	if err := ctrl.sessions.Save(c, s); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save session", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"data":       quote,
		"peso_total": models.CartWeight(cart),
	})
}
