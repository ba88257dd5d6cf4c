package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tienda-hogar/config"
	"tienda-hogar/controllers"
	"tienda-hogar/middleware"
	"tienda-hogar/repositories"
	"tienda-hogar/services"
	"tienda-hogar/session"
)

func SetupRoutes(router *gin.Engine, cfg *config.Config, store repositories.ProductStore, cache *redis.Client, sessions *session.Manager) {
	productSvc := services.NewProductService(store)
	cartSvc := services.NewCartService(store)

	catalogCtrl := controllers.NewCatalogController(productSvc, cache, sessions)
	cartCtrl := controllers.NewCartController(cartSvc, sessions)
	shippingCtrl := controllers.NewShippingController(sessions)
	authCtrl := controllers.NewAuthController(cfg, sessions)
	adminCtrl := controllers.NewAdminController(productSvc, cache, cfg)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/", catalogCtrl.GetCatalog)
	router.GET("/categorias", catalogCtrl.GetCategories)

	router.GET("/login", authCtrl.LoginPage)
	router.POST("/login", authCtrl.Login)
	router.GET("/logout", authCtrl.Logout)

	router.GET("/carrito", cartCtrl.GetCart)
	router.GET("/agregar_carrito/:id", cartCtrl.AddToCart)
	router.GET("/aumentar/:id", cartCtrl.Increase)
	router.GET("/disminuir/:id", cartCtrl.Decrease)
	router.GET("/carrito/eliminar/:id", cartCtrl.RemoveItem)
	router.GET("/carrito/vaciar", cartCtrl.Empty)
	router.POST("/calcular_envio", shippingCtrl.CalculateShipping)

	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret), sessions))
	{
		admin.GET("/admin", adminCtrl.ListProducts)
		admin.POST("/agregar", adminCtrl.CreateProduct)
		admin.POST("/editar/:id", adminCtrl.UpdateProduct)
		admin.GET("/eliminar/:id", adminCtrl.DeleteProduct)
		admin.GET("/stock_mas/:id", adminCtrl.StockUp)
		admin.GET("/stock_menos/:id", adminCtrl.StockDown)
	}

	router.Static("/uploads", cfg.UploadDir)
}
