package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/phoenixwrites/phoenix/admin"
	"github.com/phoenixwrites/phoenix/auth"
	"github.com/phoenixwrites/phoenix/config"
	"github.com/phoenixwrites/phoenix/controllers"
	"github.com/phoenixwrites/phoenix/middleware"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
)

// Deps are the collaborators the router hands to controllers.
type Deps struct {
	Config   config.AppConfig
	DB       *gorm.DB
	Posts    store.PostStore
	Auth     *auth.Service
	Notifier controllers.Notifier
	// AccessLog receives request logs; a rolling file logger on GinPath when nil.
	AccessLog *zap.Logger
}

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(d Deps) *gin.Engine {
	cfg := d.Config
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	gl := d.AccessLog
	if gl == nil {
		gl = utils.NewRollingFileLogger(cfg.GinPath, cfg)
	}
	r.Use(middleware.RequestID())
	r.Use(utils.Ginzap(gl))
	r.Use(utils.RecoveryWithZap(gl, false))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	blogController := controllers.NewBlogController(d.Posts)
	contentController := controllers.NewContentController()
	contactController := controllers.NewContactController(d.DB, d.Notifier, cfg.ContactNotifyEmail, cfg.ContactCaptchaEnabled)
	adminController := controllers.NewAdminController(d.Auth, admin.NewWorkspaces(time.Now))
	pageController := controllers.NewPageController(d.Posts, contactController, cfg.SiteName)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)

	api := r.Group("/api/v1")

	blogGroup := api.Group("/blog")
	blogGroup.GET("/posts", blogController.ListPosts)
	blogGroup.GET("/posts/:id", blogController.GetPost)
	blogGroup.GET("/categories", blogController.Categories)

	api.GET("/services", contentController.Services)
	api.GET("/portfolio", contentController.Portfolio)
	api.GET("/about", contentController.About)

	contactGroup := api.Group("/contact")
	contactGroup.GET("/options", contactController.Options)
	contactGroup.GET("/captcha", limiter.Middleware(), contactController.Captcha)
	contactGroup.POST("", limiter.Middleware(), contactController.Submit)

	adminGroup := api.Group(cfg.AdminPath)
	adminGroup.GET("/session", adminController.Session)
	adminGroup.POST("/login", limiter.Middleware(), adminController.Login)

	protected := adminGroup.Group("")
	protected.Use(middleware.AdminRequired(d.Auth))
	protected.POST("/logout", adminController.Logout)
	protected.GET("/posts", adminController.ListPosts)
	protected.POST("/posts", adminController.CreatePost)
	protected.GET("/posts/:id", adminController.GetPost)
	protected.PUT("/posts/:id", adminController.UpdatePost)
	protected.DELETE("/posts/:id", adminController.DeletePost)
	protected.GET("/posts/:id/edit", adminController.EditPost)
	protected.GET("/draft", adminController.GetDraft)
	protected.PUT("/draft", adminController.PutDraft)
	protected.POST("/draft/new", adminController.NewDraft)
	protected.POST("/draft/save", adminController.SaveDraft)
	protected.DELETE("/draft", adminController.CancelDraft)

	r.GET("/", pageController.Home)
	r.GET("/services", pageController.Services)
	r.GET("/portfolio", pageController.Portfolio)
	r.GET("/blog", pageController.Blog)
	r.GET("/blog/:id", pageController.Post)
	r.GET("/blog/:id/:slug", pageController.Post)
	r.GET("/about", pageController.About)
	r.GET("/contact", pageController.Contact)
	r.POST("/contact", limiter.Middleware(), pageController.ContactSubmit)

	r.NoRoute(pageController.NotFound)

	return r
}
