package routes

import (
	"net/http"
	"time"

	"github.com/fierogr/findfarewells-sub000/handlers"
	"github.com/fierogr/findfarewells-sub000/middleware"
	"github.com/fierogr/findfarewells-sub000/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the public directory endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		// Search accepts GET with query parameters so results pages can be
		// linked, and POST with a JSON body from the search dialog.
		api.GET("/search", hb.Search.SearchHandler)
		api.POST("/search", hb.Search.SearchHandler)

		api.GET("/partners", hb.Partner.GetPartnersHandler)
		api.GET("/partners/:id", hb.Partner.GetPartnerByIDHandler)
		api.POST("/partners/:id/select-package", hb.Partner.SelectPackageHandler)

		api.POST("/register", hb.Registration.SubmitHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.LoginHandler)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())

		protected.POST("/partners", hb.Partner.CreatePartnerHandler)
		protected.PUT("/partners/:id", hb.Partner.UpdatePartnerHandler)
		protected.DELETE("/partners/:id", hb.Partner.DeletePartnerHandler)

		protected.POST("/partners/import", hb.CSV.ImportHandler)
		protected.GET("/partners/export", hb.CSV.ExportHandler)

		protected.GET("/registrations", hb.Registration.ListHandler)
		protected.POST("/registrations/:id/approve", hb.Registration.ApproveHandler)
		protected.POST("/registrations/:id/reject", hb.Registration.RejectHandler)

		protected.GET("/search-requests", hb.Admin.GetSearchRequestsHandler)
		protected.DELETE("/search-requests/:id", hb.Admin.DeleteSearchRequestHandler)

		protected.GET("/settings/admin-email", hb.Admin.GetAdminEmailHandler)
		protected.PUT("/settings/admin-email", hb.Admin.SetAdminEmailHandler)

		if hb.Storage != nil {
			protected.POST("/storage/upload/:bucket", hb.Storage.UploadFileHandler)
		}
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
