package render

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Page is the full HTML document wrapped around a container.
type Page struct {
	Title     string
	Container *Container
}

type pageView struct {
	Title       string
	ContainerID string
	CardClass   string
	Cards       []Card
}

// Write renders the page as HTML. All record values are escaped.
func (p Page) Write(w io.Writer) error {
	if p.Container == nil {
		return ErrNoContainer
	}
	return pageTemplate.Execute(w, pageView{
		Title:       p.Title,
		ContainerID: p.Container.ID(),
		CardClass:   CardClass,
		Cards:       p.Container.Cards(),
	})
}
