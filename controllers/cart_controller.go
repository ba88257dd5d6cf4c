package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"tienda-hogar/models"
	"tienda-hogar/services"
	"tienda-hogar/session"
)

type CartController struct {
	cart     *services.CartService
	sessions *session.Manager
}

func NewCartController(cart *services.CartService, sessionMgr *session.Manager) *CartController {
	return &CartController{cart: cart, sessions: sessionMgr}
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "ID inválido"})
		return 0, false
	}
	return id, true
}

func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Producto no encontrado"})
	case errors.Is(err, services.ErrItemNotInCart):
		c.JSON(404, gin.H{"success": false, "message": "El producto no está en el carrito"})
	case errors.Is(err, services.ErrOutOfStock):
		c.JSON(409, gin.H{"success": false, "message": "No hay más stock disponible"})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Error interno", "error": err.Error()})
	}
}

func (ctrl *CartController) respondCart(c *gin.Context, s *sessions.Session, status int) {
	cart := ctrl.sessions.Cart(s)

	resp := gin.H{
		"success":     true,
		"data":        cart,
		"total":       models.CartTotal(cart),
		"total_items": models.CartCount(cart),
		"peso_total":  models.CartWeight(cart),
	}
	if quote, ok := ctrl.sessions.Quote(s); ok {
		resp["envio"] = quote
	}
	c.JSON(status, resp)
}

// mutate applies a cart operation, drops the stale shipping quote and
// persists the session.
func (ctrl *CartController) mutate(c *gin.Context, op func(cart []models.CartItem) ([]models.CartItem, error)) {
	s := ctrl.sessions.Get(c)
	cart, err := op(ctrl.sessions.Cart(s))
	if err != nil {
		cartError(c, err)
		return
	}

	ctrl.sessions.SetCart(s, cart)
	ctrl.sessions.ClearQuote(s)
	if err := ctrl.sessions.Save(c, s); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save session", "error": err.Error()})
		return
	}
	ctrl.respondCart(c, s, 200)
}

// @Summary View cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /carrito [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	ctrl.respondCart(c, ctrl.sessions.Get(c), 200)
}

// @Summary Add product to cart
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /agregar_carrito/{id} [get]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctrl.mutate(c, func(cart []models.CartItem) ([]models.CartItem, error) {
		return ctrl.cart.Add(c.Request.Context(), cart, id)
	})
}

// @Summary Increase line quantity
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /aumentar/{id} [get]
func (ctrl *CartController) Increase(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctrl.mutate(c, func(cart []models.CartItem) ([]models.CartItem, error) {
		return ctrl.cart.Increase(c.Request.Context(), cart, id)
	})
}

// @Summary Decrease line quantity
// @Description At quantity 1 the line is removed entirely
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /disminuir/{id} [get]
func (ctrl *CartController) Decrease(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctrl.mutate(c, func(cart []models.CartItem) ([]models.CartItem, error) {
		return ctrl.cart.Decrease(cart, id)
	})
}

// @Summary Remove line from cart
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /carrito/eliminar/{id} [get]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctrl.mutate(c, func(cart []models.CartItem) ([]models.CartItem, error) {
		return ctrl.cart.Remove(cart, id), nil
	})
}

// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /carrito/vaciar [get]
func (ctrl *CartController) Empty(c *gin.Context) {
	ctrl.mutate(c, func([]models.CartItem) ([]models.CartItem, error) {
		return []models.CartItem{}, nil
	})
}
