package renderer

// TemplateName represents a known template filename.
type TemplateName string

const (
	TplErrorPage TemplateName = "error.html.tmpl"
)

// ErrorPageData holds the data required by the TplErrorPage template.
type ErrorPageData struct {
	Domain string
	// Title defaults to "Page not found".
	Title         string
	IndexDocument string
}
