package routes

import (
	"net/http"

	adminapi "gallery-app/internal/api/admin"
	authapi "gallery-app/internal/api/auth"
	inquiriesapi "gallery-app/internal/api/inquiries"
	paintingsapi "gallery-app/internal/api/paintings"
	selectionapi "gallery-app/internal/api/selection"
	tourapi "gallery-app/internal/api/tour"
	"gallery-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP surface needs, built once in main.
type Deps struct {
	JWTSecret     string
	SecureCookies bool

	Paintings *paintingsapi.Handler
	Selection *selectionapi.Handler
	Tour      *tourapi.Handler
	Inquiries *inquiriesapi.Handler
	Admin     *adminapi.Handler
	Auth      *authapi.Handler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/paintings", d.Paintings.List)
	r.GET("/paintings/featured", d.Paintings.Featured)
	r.GET("/paintings/mediums", d.Paintings.Mediums)
	r.GET("/paintings/:id", d.Paintings.Get)

	// Visitor-scoped state: selection cart and walkthrough flags.
	visitor := r.Group("/")
	visitor.Use(middleware.VisitorSession(d.SecureCookies))
	visitor.GET("/selection", d.Selection.Get)
	visitor.DELETE("/selection", d.Selection.Clear)
	visitor.POST("/selection/checkout", d.Selection.Checkout)
	visitor.POST("/selection/:id", d.Selection.Add)
	visitor.DELETE("/selection/:id", d.Selection.Remove)
	visitor.GET("/virtual-gallery/instructions", d.Tour.Instructions)
	visitor.GET("/virtual-gallery/paintings/:index", d.Tour.Stop)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/inquiries", d.Inquiries.Submit)
	public.POST("/auth/login", d.Auth.Login)
	public.GET("/auth/google", d.Auth.GoogleStart)
	public.GET("/auth/google/callback", d.Auth.GoogleCallback)

	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(d.JWTSecret),
		middleware.RequireRole(authapi.RoleAdmin),
		middleware.SanitizeAndCleanInputMiddleware(),
	)
	admin.GET("/dashboard", d.Admin.Dashboard)
	admin.GET("/paintings", d.Admin.ListPaintings)
	admin.POST("/paintings", d.Admin.CreatePainting)
	admin.POST("/paintings/reset", d.Admin.ResetPaintings)
	admin.GET("/paintings/:id", d.Admin.GetPainting)
	admin.PUT("/paintings/:id", d.Admin.UpdatePainting)
	admin.DELETE("/paintings/:id", d.Admin.DeletePainting)
	admin.GET("/inquiries", d.Inquiries.List)
	admin.GET("/inquiries/:id", d.Inquiries.Get)
	admin.PUT("/inquiries/:id/status", d.Inquiries.UpdateStatus)
}
