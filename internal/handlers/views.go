package handlers

import (
	"fmt"

	"github.com/gofiber/template/html/v3"
)

// NewViewEngine creates the HTML template engine for the views in dir.
func NewViewEngine(dir string, reload bool) *html.Engine {
	engine := html.New(dir, ".html")
	engine.Reload(reload)
	engine.AddFunc("miles", func(f float64) string {
		return fmt.Sprintf("%.1f", f)
	})
	engine.AddFunc("coord", func(f float64) string {
		return fmt.Sprintf("%.5f", f)
	})
	return engine
}
