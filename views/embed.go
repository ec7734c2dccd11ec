// Package views holds the page templates, embedded into the binary.
package views

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS

// NewEngine returns the Fiber template engine serving the embedded templates
func NewEngine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.Reload(reload)
	engine.AddFunc("json", toJSON)
	return engine
}

// toJSON marshals v for use inside <script type="application/json">
func toJSON(v any) (template.JS, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}
