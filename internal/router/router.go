package router

import (
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/auth"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/combo"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/middleware"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/order"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/session"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/voice"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *auth.Handler
	Catalog      *catalog.Handler
	CatalogAdmin *catalog.AdminHandler
	Combo        *combo.Handler
	Voice        *voice.Handler
	Session      *session.Handler
	Order        *order.Handler
	OrderAdmin   *order.AdminHandler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/auth/register", h.Auth.Register)
	r.POST("/auth/login", h.Auth.Login)

	// --------------------------------------------------
	// Routes behind JWT auth
	// --------------------------------------------------
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/auth/logout", h.Auth.Logout)

		authed.GET("/allergens", h.Catalog.ListAllergens)
		authed.GET("/menu", h.Catalog.Menu)
		authed.GET("/menu/:id/suggestions", h.Catalog.Suggestions)

		authed.GET("/combos", h.Combo.Suggest)
		authed.POST("/voice/order", h.Voice.Order)

		authed.GET("/cart", h.Session.Cart)
		authed.POST("/cart/items", h.Session.AddCartItem)
		authed.PATCH("/cart/items/:id", h.Session.UpdateCartItem)
		authed.DELETE("/cart/items/:id", h.Session.RemoveCartItem)
		authed.DELETE("/cart", h.Session.ClearCart)

		authed.GET("/profile", h.Session.Profile)
		authed.PATCH("/profile/allergies", h.Session.UpdateAllergies)
		authed.PATCH("/profile/budget", h.Session.UpdateBudget)

		authed.POST("/orders", h.Order.Checkout)
		authed.GET("/orders", h.Order.ListMine)
		authed.GET("/orders/:id", h.Order.Get)
	}

	// --------------------------------------------------
	// Admin-only routes
	// --------------------------------------------------
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/orders/:id/advance", h.OrderAdmin.Advance)
		admin.GET("/admin/orders", h.OrderAdmin.Board)
		admin.GET("/admin/stats", h.OrderAdmin.Stats)
		admin.PATCH("/admin/menu/:id/availability", h.CatalogAdmin.ToggleAvailability)
		admin.POST("/admin/menu/:id/image", h.CatalogAdmin.UploadImage)
	}

	return r
}
