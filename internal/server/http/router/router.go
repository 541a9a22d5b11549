package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/avdeyev/studydesk/internal/catalog"
	"github.com/avdeyev/studydesk/internal/server/http/handlers"
	"github.com/avdeyev/studydesk/internal/server/http/middleware"
	"github.com/avdeyev/studydesk/internal/wizard"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.Facade, wiz *wizard.Wizard, cat *catalog.Catalog, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, wiz)
	catalogHandler := handlers.NewCatalogHandler(cat)

	api := engine.Group("/api")

	reference := api.Group("/catalog")
	reference.GET("/courses", catalogHandler.Courses)
	reference.GET("/faculties", catalogHandler.Faculties)
	reference.GET("/work-types", catalogHandler.WorkTypes)
	reference.GET("/semesters", catalogHandler.Semesters)
	reference.GET("/subjects", catalogHandler.Subjects)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.POST("/orders", orderHandler.Create)
	userAuth.GET("/orders", orderHandler.List)

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(facade))
	admin.GET("/orders", orderHandler.ListAll)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	return engine
}
