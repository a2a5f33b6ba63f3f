package server

import (
	"github.com/gin-gonic/gin"

	"auction-admin/internal/handler"
	"auction-admin/internal/middleware"
	"auction-admin/internal/session"
	"auction-admin/internal/web"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Dashboard  *handler.DashboardHandler
	Users      *handler.UserHandler
	Auctions   *handler.AuctionHandler
	Items      *handler.ItemHandler
	Categories *handler.CategoryHandler
	Bids       *handler.BidHandler
}

// SetupRouter builds the explicit route table. Everything past the auth
// routes sits behind the session gate. loginLimiter may be nil when no
// Redis is configured.
func SetupRouter(sessions *session.Manager, h Handlers, loginLimiter gin.HandlerFunc, isProduction bool) *gin.Engine {
	router := gin.New() // no default middleware, full control over logging

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.HSTS(isProduction))

	router.SetHTMLTemplate(web.Templates())

	// Public routes
	router.GET("/", h.Auth.Home)
	router.GET("/login", h.Auth.LoginForm)
	if loginLimiter != nil {
		router.POST("/login", loginLimiter, h.Auth.Login)
	} else {
		router.POST("/login", h.Auth.Login)
	}
	router.GET("/register", h.Auth.RegisterForm)
	router.POST("/register", h.Auth.Register)
	router.GET("/logout", h.Auth.Logout)

	// Protected routes (require a logged-in session)
	protected := router.Group("/")
	protected.Use(middleware.RequireLogin(sessions))
	{
		protected.GET("/dashboard", h.Dashboard.Dashboard)

		protected.GET("/users", h.Users.List)
		protected.GET("/add_user", h.Users.AddForm)
		protected.POST("/add_user", h.Users.Add)
		protected.GET("/edit_user/:id", h.Users.EditForm)
		protected.POST("/edit_user/:id", h.Users.Edit)
		protected.GET("/deactivate_user/:id", h.Users.Deactivate)

		protected.GET("/auctions", h.Auctions.List)
		protected.GET("/create_auction", h.Auctions.CreateForm)
		protected.POST("/create_auction", h.Auctions.Create)
		protected.GET("/edit_auction/:id", h.Auctions.EditForm)
		protected.POST("/edit_auction/:id", h.Auctions.Edit)
		protected.GET("/delete_auction/:id", h.Auctions.Delete)
		protected.POST("/update_auction_status/:id", h.Auctions.UpdateStatus)

		protected.GET("/items", h.Items.List)
		protected.GET("/add_item", h.Items.AddForm)
		protected.POST("/add_item", h.Items.Add)
		protected.GET("/edit_item/:id", h.Items.EditForm)
		protected.POST("/edit_item/:id", h.Items.Edit)
		protected.GET("/delete_item/:id", h.Items.Delete)

		protected.GET("/categories", h.Categories.List)
		protected.POST("/add_category", h.Categories.Add)
		protected.GET("/delete_category/:id", h.Categories.Delete)

		protected.GET("/bids", h.Bids.List)
		protected.GET("/approve_bid/:id", h.Bids.Approve)
		protected.GET("/reject_bid/:id", h.Bids.Reject)
		protected.GET("/delete_bid/:id", h.Bids.Delete)
	}

	return router
}
