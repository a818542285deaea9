package router

import (
	"clawdbot-dashboard/internal/assets"
	"clawdbot-dashboard/internal/http/handlers"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Options struct {
	// Mode is passed to gin.SetMode when set.
	Mode        string
	LogRequests bool
}

func New(tasks *handlers.TaskHandler, page *handlers.PageHandler, opts Options) (*gin.Engine, error) {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.LogRequests {
		router.Use(gin.Logger())
	}

	tmpl, err := template.New("").Funcs(handlers.TemplateFuncs()).ParseFS(assets.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// dashboard page
	router.GET("/", page.Index)
	router.POST("/tasks/new", page.BeginCreate)
	router.POST("/tasks/:id/edit", page.BeginEdit)
	router.POST("/tasks/:id/delete", page.Delete)
	router.POST("/modal/submit", page.Submit)
	router.POST("/modal/cancel", page.Cancel)

	api := router.Group("/api")
	{
		api.GET("/tasks", tasks.List)
		api.POST("/tasks", tasks.Create)
		api.GET("/tasks/:id", tasks.Get)
		api.PUT("/tasks/:id", tasks.Update)
		api.DELETE("/tasks/:id", tasks.Delete)
		api.GET("/stats", tasks.Stats)
		api.GET("/export", tasks.Export)
	}

	return router, nil
}
