package router

import (
	"time"

	"forge/config"
	"forge/internal/handler"
	"forge/internal/middleware"
	"forge/internal/repository"
	"forge/pkg/cloudinary"
	"forge/pkg/stripeclient"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, stripe stripeclient.Client, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	methodRepo := repository.NewPaymentMethodRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	identityRepo := repository.NewIdentityRepository(db)
	pageRepo := repository.NewPageRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	pricingRepo := repository.NewPricingRepository(db)
	hostingRepo := repository.NewHostingRepository(db)

	// Handlers
	profileHandler := handler.NewProfileHandler(profileRepo)
	methodHandler := handler.NewPaymentMethodHandler(methodRepo, stripe)
	paymentHandler := handler.NewPaymentHandler(cfg, paymentRepo, orderRepo, methodRepo, profileRepo, stripe)
	orderHandler := handler.NewOrderHandler(orderRepo)
	paymentWebhookHandler := handler.NewPaymentWebhookHandler(cfg, paymentRepo)
	identityWebhookHandler := handler.NewIdentityWebhookHandler(identityRepo)
	pageHandler := handler.NewPageHandler(pageRepo)
	noteHandler := handler.NewNoteHandler(noteRepo)
	portfolioHandler := handler.NewPortfolioHandler(portfolioRepo)
	serviceHandler := handler.NewServiceHandler(serviceRepo)
	pricingHandler := handler.NewPricingHandler(pricingRepo)
	hostingHandler := handler.NewHostingHandler(hostingRepo)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		// Public content
		api.GET("/pages", pageHandler.List)
		api.GET("/pages/:slug", pageHandler.Get)
		api.GET("/notes", noteHandler.List)
		api.GET("/notes/:slug", noteHandler.Get)
		api.POST("/notes/:slug/comments", noteHandler.AddComment)
		api.GET("/portfolio", portfolioHandler.List)
		api.GET("/portfolio/:slug", portfolioHandler.Get)
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:slug", serviceHandler.Get)
		api.GET("/pricing", pricingHandler.List)
		api.GET("/hosting", hostingHandler.List)
		api.GET("/hosting/:slug", hostingHandler.Get)

		// Account area
		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", profileHandler.Get)
			me.PATCH("/profile", profileHandler.Update)
			me.GET("/payment-methods", methodHandler.List)
			me.POST("/payment-methods", methodHandler.Add)
			me.PUT("/payment-methods/:id/default", methodHandler.SetDefault)
			me.DELETE("/payment-methods/:id", methodHandler.Deactivate)
			me.GET("/payments", paymentHandler.ListMine)
			me.GET("/orders", orderHandler.ListMine)
			me.GET("/orders/:id", orderHandler.Get)
		}
		api.POST("/checkout", authMw, paymentHandler.Checkout)

		// Back office
		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/orders", orderHandler.AdminList)
			admin.PATCH("/orders/:id", orderHandler.AdminUpdate)

			admin.GET("/pages", pageHandler.AdminList)
			admin.POST("/pages", pageHandler.AdminCreate)
			admin.PUT("/pages/:id", pageHandler.AdminUpdate)
			admin.DELETE("/pages/:id", pageHandler.AdminDelete)

			admin.GET("/notes", noteHandler.AdminList)
			admin.POST("/notes", noteHandler.AdminCreate)
			admin.PUT("/notes/:id", noteHandler.AdminUpdate)
			admin.DELETE("/notes/:id", noteHandler.AdminDelete)
			admin.GET("/comments/pending", noteHandler.AdminListPendingComments)
			admin.PUT("/comments/:id/approve", noteHandler.AdminApproveComment)

			admin.GET("/portfolio", portfolioHandler.AdminList)
			admin.POST("/portfolio", portfolioHandler.AdminCreate)
			admin.PUT("/portfolio/:id", portfolioHandler.AdminUpdate)
			admin.DELETE("/portfolio/:id", portfolioHandler.AdminDelete)

			admin.GET("/services", serviceHandler.AdminList)
			admin.POST("/services", serviceHandler.AdminCreate)
			admin.PUT("/services/:id", serviceHandler.AdminUpdate)
			admin.DELETE("/services/:id", serviceHandler.AdminDelete)

			admin.GET("/pricing", pricingHandler.AdminList)
			admin.POST("/pricing", pricingHandler.AdminCreate)
			admin.PUT("/pricing/:id", pricingHandler.AdminUpdate)
			admin.DELETE("/pricing/:id", pricingHandler.AdminDelete)
			admin.POST("/pricing/:id/features", pricingHandler.AdminAddFeature)
			admin.DELETE("/pricing/:id/features/:feature_id", pricingHandler.AdminDeleteFeature)

			admin.GET("/hosting", hostingHandler.AdminList)
			admin.POST("/hosting", hostingHandler.AdminCreate)
			admin.PUT("/hosting/:id", hostingHandler.AdminUpdate)
			admin.DELETE("/hosting/:id", hostingHandler.AdminDelete)

			admin.POST("/upload/image", uploadHandler.UploadImage)
			admin.DELETE("/upload/image", uploadHandler.DeleteImage)
		}

		// External collaborators
		api.POST("/webhooks/stripe", paymentWebhookHandler.Handle)
		api.POST("/webhooks/identity", identityWebhookHandler.Handle)
	}

	return r
}
