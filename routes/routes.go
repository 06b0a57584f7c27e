package routes

import (
	"pet-shop/controllers"
	"pet-shop/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := &controllers.AuthController{}
	categoryCtrl := &controllers.CategoryController{}
	petCtrl := &controllers.PetController{}
	cartCtrl := &controllers.CartController{}
	orderCtrl := &controllers.OrderController{}
	reviewCtrl := &controllers.ReviewController{}
	searchCtrl := controllers.NewSearchController()
	checkoutCtrl := controllers.NewCheckoutController()
	addressCtrl := controllers.NewAddressController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/", categoryCtrl.GetCategories)
	router.GET("/categories/:id", categoryCtrl.GetCategoryByID)
	router.GET("/products", petCtrl.GetPets)
	router.GET("/search", searchCtrl.Search)
	router.GET("/pets/:id", petCtrl.GetPetByID)

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/auth/login", func(c *gin.Context) {
		c.JSON(401, gin.H{"success": false, "message": "Login required"})
	})

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
	}

	// Storefront pages redirect anonymous visitors to the login page
	// instead of answering 401.
	store := router.Group("/")
	store.Use(middleware.LoginRequired())
	{
		store.GET("/cart", cartCtrl.GetCart)
		store.POST("/cart/add/:id", cartCtrl.AddToCart)
		store.POST("/cart/remove/:id", cartCtrl.RemoveFromCart)

		store.GET("/checkout", checkoutCtrl.GetCheckout)
		store.POST("/checkout", checkoutCtrl.PostCheckout)

		store.GET("/orders", orderCtrl.GetOrders)
		store.GET("/orders/:id", orderCtrl.GetOrderByID)

		store.POST("/pets/:id/reviews", reviewCtrl.CreateReview)
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/addresses", addressCtrl.GetAddresses)
		api.GET("/addresses/:id", addressCtrl.GetAddressByID)
		api.POST("/addresses", addressCtrl.CreateAddress)
		api.PUT("/addresses/:id", addressCtrl.UpdateAddress)
		api.DELETE("/addresses/:id", addressCtrl.DeleteAddress)
	}

	seller := router.Group("/admin")
	seller.Use(middleware.AuthMiddleware(), middleware.SellerMiddleware())
	{
		seller.POST("/pets", petCtrl.CreatePet)
		seller.PATCH("/pets/:id", petCtrl.UpdatePet)
		seller.DELETE("/pets/:id", petCtrl.DeletePet)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)
	}

	router.Static("/uploads", "./uploads")

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "message": "Page not found"})
	})
}
