package views

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"

	"github.com/usabbag/rainparis/internal/modules/panel/types"
)

//go:embed templates
var viewsFS embed.FS

var pageTmpl *template.Template

// loadTemplatesFromFS loads page templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	tmpl, err := template.ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}
	pageTmpl = tmpl
	return nil
}

// LoadTemplates loads embedded page templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// PanelData is the view model for the panel partial.
type PanelData struct {
	Loading     bool
	LoadingText string
	Location    string
	Temperature int
	Summary     string
	LastUpdated string
	Chart       template.HTML
	ChartPoints int

	// Pending is true while a request is outstanding; the partial keeps polling.
	Pending bool
}

type PageData struct {
	Theme     string
	Districts []types.DistrictElement
	Panel     *PanelData
}

func RenderPage(w io.Writer, data *PageData) error {
	if pageTmpl == nil {
		return errors.New("page template not loaded: call views.LoadTemplates during startup")
	}
	return pageTmpl.ExecuteTemplate(w, "index.html", data)
}

// RenderPanelPartial executes only the panel partial into w.
// Use for HTMX fragment refresh.
func RenderPanelPartial(w io.Writer, data *PanelData) error {
	if pageTmpl == nil {
		return errors.New("panel template not loaded: call views.LoadTemplates during startup")
	}
	return pageTmpl.ExecuteTemplate(w, "panel", data)
}
