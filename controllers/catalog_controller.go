package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"tienda-hogar/models"
	"tienda-hogar/services"
	"tienda-hogar/session"
)

type CatalogController struct {
	products *services.ProductService
	cache    *redis.Client
	sessions *session.Manager
}

func NewCatalogController(products *services.ProductService, cache *redis.Client, sessions *session.Manager) *CatalogController {
	return &CatalogController{products: products, cache: cache, sessions: sessions}
}

func catalogCacheKey(query, category string) string {
	return fmt.Sprintf("catalog_q%s_c%s", query, category)
}

// invalidateCatalogCache drops every cached catalog listing. Called after
// any admin mutation.
func invalidateCatalogCache(cache *redis.Client) {
	if cache == nil {
		return
	}
	ctx := context.Background()
	iter := cache.Scan(ctx, 0, "catalog_*", 0).Iterator()
	for iter.Next(ctx) {
		cache.Del(ctx, iter.Val())
	}
}

// @Summary Catalog
// @Description List products, filtered by name substring and category
// @Tags Catalog
// @Produce json
// @Param q query string false "Case-insensitive substring on product name"
// @Param categoria query string false "Exact category match"
// @Success 200 {object} models.Response
// @Router / [get]
func (ctrl *CatalogController) GetCatalog(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("categoria")

	var data json.RawMessage
	cacheKey := catalogCacheKey(query, category)
	ctx := c.Request.Context()

	if ctrl.cache != nil {
		if cached, err := ctrl.cache.Get(ctx, cacheKey).Result(); err == nil {
			data = json.RawMessage(cached)
		}
	}

	if data == nil {
		products, err := ctrl.products.List(ctx, query, category)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to load catalog", "error": err.Error()})
			return
		}
		data, _ = json.Marshal(products)
		if ctrl.cache != nil {
			ctrl.cache.Set(ctx, cacheKey, string(data), 5*time.Minute)
		}
	}

	cart := ctrl.sessions.Cart(ctrl.sessions.Get(c))

	c.JSON(200, gin.H{
		"success":                true,
		"data":                   data,
		"categorias":             models.Categories,
		"categoria_seleccionada": category,
		"carrito_total":          models.CartCount(cart),
	})
}

// @Summary Categories
// @Description Fixed category list
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categorias [get]
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "data": models.Categories})
}
