package views

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/klimatkollen/klimatkollen/internal/pkg/viewmodel"
)

// MetaTags renders the title, description and Open Graph tags of a page
func MetaTags(meta viewmodel.Meta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := templ.EscapeString(meta.Title)
		description := templ.EscapeString(meta.Description)

		_, err := io.WriteString(w, "<title>"+title+"</title>\n"+
			`<meta name="description" content="`+description+`">`+"\n"+
			`<meta property="og:title" content="`+title+`">`+"\n"+
			`<meta property="og:description" content="`+description+`">`+"\n"+
			`<meta property="og:type" content="website">`+"\n")
		if err != nil {
			return err
		}
		if meta.URL != "" {
			_, err = io.WriteString(w, `<meta property="og:url" content="`+templ.EscapeString(meta.URL)+`">`+"\n")
		}
		return err
	})
}

// RenderMetaTags renders MetaTags for embedding into an html/template layout
func RenderMetaTags(ctx context.Context, meta viewmodel.Meta) (template.HTML, error) {
	return templ.ToGoHTML(ctx, MetaTags(meta))
}
