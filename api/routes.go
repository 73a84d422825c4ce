package api

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/logs.html
var templatesFS embed.FS

// NewRouter builds the gin engine with the log routes and the
// embedded HTML template for the log view.
func NewRouter(controller *LogController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/logs.html")))
	RegisterLogRoutes(router, controller)
	return router
}

// RegisterLogRoutes wires the log endpoints.
func RegisterLogRoutes(r *gin.Engine, controller *LogController) {
	r.GET("/health", controller.Health)
	r.GET("/logs", controller.ShowLogs)
	r.POST("/save_message", controller.SaveMessage)
	r.POST("/edit_message", controller.EditMessage)
}
