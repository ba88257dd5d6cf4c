package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"tienda-hogar/config"
	"tienda-hogar/models"
	"tienda-hogar/services"
	"tienda-hogar/utils"
)

type AdminController struct {
	products *services.ProductService
	cache    *redis.Client
	cfg      *config.Config
}

func NewAdminController(products *services.ProductService, cache *redis.Client, cfg *config.Config) *AdminController {
	return &AdminController{products: products, cache: cache, cfg: cfg}
}

func adminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Producto no encontrado"})
	case errors.Is(err, services.ErrInvalidCategory):
		c.JSON(400, gin.H{"success": false, "message": "Categoría inválida"})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Error interno", "error": err.Error()})
	}
}

// saveUploadedImage stores the optional "imagen" form file, returning ""
// when no file was sent.
func (ctrl *AdminController) saveUploadedImage(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		return "", true
	}
	filename, err := utils.SaveImage(c, fileHeader, ctrl.cfg.UploadDir, ctrl.cfg.MaxUploadSize)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return "", false
	}
	return filename, true
}

// @Summary Admin product list
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin [get]
func (ctrl *AdminController) ListProducts(c *gin.Context) {
	products, err := ctrl.products.List(c.Request.Context(), "", "")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{
		"success":    true,
		"data":       products,
		"categorias": models.Categories,
	})
}

// @Summary Create product
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param nombre formData string true "Name"
// @Param precio formData int true "Price"
// @Param stock formData int true "Stock"
// @Param codigo formData string false "Internal code"
// @Param categoria formData string true "Category"
// @Param peso formData number false "Weight in kg"
// @Param imagen formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /agregar [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Datos de producto inválidos", "error": err.Error()})
		return
	}

	image, ok := ctrl.saveUploadedImage(c)
	if !ok {
		return
	}

	product, err := ctrl.products.Create(c.Request.Context(), req, image)
	if err != nil {
		adminError(c, err)
		return
	}

	invalidateCatalogCache(ctrl.cache)
	c.JSON(201, gin.H{"success": true, "message": "Producto creado", "data": product})
}

// @Summary Update product
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /editar/{id} [post]
func (ctrl *AdminController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Datos de producto inválidos", "error": err.Error()})
		return
	}

	image, ok := ctrl.saveUploadedImage(c)
	if !ok {
		return
	}

	existing, err := ctrl.products.Get(c.Request.Context(), id)
	if err != nil {
		adminError(c, err)
		return
	}
	oldImage := existing.Image

	product, err := ctrl.products.Update(c.Request.Context(), id, req, image)
	if err != nil {
		adminError(c, err)
		return
	}

	if image != "" && oldImage != "" && oldImage != image {
		utils.DeleteImage(ctrl.cfg.UploadDir, oldImage)
	}

	invalidateCatalogCache(ctrl.cache)
	c.JSON(200, gin.H{"success": true, "message": "Producto actualizado", "data": product})
}

// @Summary Delete product
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /eliminar/{id} [get]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existing, err := ctrl.products.Get(c.Request.Context(), id)
	if err != nil {
		adminError(c, err)
		return
	}

	if err := ctrl.products.Delete(c.Request.Context(), id); err != nil {
		adminError(c, err)
		return
	}

	utils.DeleteImage(ctrl.cfg.UploadDir, existing.Image)
	invalidateCatalogCache(ctrl.cache)
	c.JSON(200, gin.H{"success": true, "message": "Producto eliminado"})
}

func (ctrl *AdminController) adjustStock(c *gin.Context, delta int) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := ctrl.products.AdjustStock(c.Request.Context(), id, delta)
	if err != nil {
		adminError(c, err)
		return
	}

	invalidateCatalogCache(ctrl.cache)
	c.JSON(200, gin.H{"success": true, "data": product})
}

// @Summary Increment stock
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /stock_mas/{id} [get]
func (ctrl *AdminController) StockUp(c *gin.Context) {
	ctrl.adjustStock(c, 1)
}

// @Summary Decrement stock
// @Description Stock floors at zero; decrementing at zero is a no-op
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /stock_menos/{id} [get]
func (ctrl *AdminController) StockDown(c *gin.Context) {
	ctrl.adjustStock(c, -1)
}
