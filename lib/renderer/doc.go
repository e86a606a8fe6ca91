// Package renderer loads the embedded HTML templates under lib/renderer/templates/
// and renders them with sprig functions.
//
// The site deploys the rendered error page next to the user content when the content
// tree has no error document of its own, so the bucket website endpoint never answers
// with the bare S3 error body.
//
// Example:
//
//	page, err := renderer.Render(renderer.TplErrorPage, renderer.ErrorPageData{
//	    Domain:        "example.org",
//	    IndexDocument: "index.html",
//	})
package renderer
