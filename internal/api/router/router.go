package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/corpsite/internal/api/handlers/auth"
	"github.com/aliskhannn/corpsite/internal/api/handlers/contact"
	"github.com/aliskhannn/corpsite/internal/api/handlers/dashboard"
	"github.com/aliskhannn/corpsite/internal/api/handlers/news"
	"github.com/aliskhannn/corpsite/internal/api/handlers/project"
	"github.com/aliskhannn/corpsite/internal/api/handlers/team"
	"github.com/aliskhannn/corpsite/internal/api/handlers/upload"
	"github.com/aliskhannn/corpsite/internal/api/handlers/vacancy"
	"github.com/aliskhannn/corpsite/internal/middlewares"
)

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Team      *team.Handler
	News      *news.Handler
	Project   *project.Handler
	Vacancy   *vacancy.Handler
	Contact   *contact.Handler
	Auth      *auth.Handler
	Dashboard *dashboard.Handler
	Upload    *upload.Handler
}

// Options configures the cross-cutting parts of the router.
type Options struct {
	AllowedOrigins []string
	UploadsDir     string
	MaxBodySize    int64
	AdminAuth      gin.HandlerFunc
}

func New(h Handlers, opts Options) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware(opts.AllowedOrigins...))
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())
	e.Use(middlewares.BodyLimit(opts.MaxBodySize))

	e.GET("/metrics", gin.WrapH(promhttp.Handler()))
	e.Static("/uploads", opts.UploadsDir)

	api := e.Group("/api")
	{
		api.GET("/team", h.Team.Roster)

		api.GET("/news", h.News.Feed)
		api.GET("/news/:id", h.News.Post)

		api.GET("/projects", h.Project.List)
		api.GET("/projects/:id", h.Project.Get)

		api.GET("/vacancies", h.Vacancy.List)
		api.GET("/vacancies/:id", h.Vacancy.Get)
		api.POST("/vacancies/:id/apply", h.Vacancy.Apply)

		api.POST("/contact", h.Contact.Submit)

		api.POST("/admin/login", h.Auth.Login)
	}

	admin := api.Group("/admin", opts.AdminAuth)
	{
		admin.POST("/logout", h.Auth.Logout)
		admin.GET("/dashboard", h.Dashboard.Stats)
		admin.POST("/uploads", h.Upload.Upload)

		admin.GET("/team/:id", h.Team.Get)
		admin.POST("/team", h.Team.Create)
		admin.PUT("/team/:id", h.Team.Update)
		admin.DELETE("/team/:id", h.Team.Delete)
		admin.POST("/team/:id/up", h.Team.MoveUp)
		admin.POST("/team/:id/down", h.Team.MoveDown)
		admin.POST("/team/backfill", h.Team.Backfill)

		admin.GET("/news/:id", h.News.Get)
		admin.POST("/news", h.News.Create)
		admin.PUT("/news/:id", h.News.Update)
		admin.DELETE("/news/:id", h.News.Delete)
		admin.GET("/news/:id/images", h.News.Gallery)
		admin.POST("/news/:id/images", h.News.AddImages)
		admin.PUT("/news/:id/images/order", h.News.ReorderImages)
		admin.DELETE("/news/:id/images/:imageID", h.News.DeleteImage)

		admin.POST("/projects", h.Project.Create)
		admin.PUT("/projects/:id", h.Project.Update)
		admin.DELETE("/projects/:id", h.Project.Delete)

		admin.POST("/vacancies", h.Vacancy.Create)
		admin.PUT("/vacancies/:id", h.Vacancy.Update)
		admin.DELETE("/vacancies/:id", h.Vacancy.Delete)
	}

	return e
}
