package report

import (
	"fmt"
	"html"

	"github.com/tansyhq/tansy/internal/shared/services/markdown"
)

// documentShell wraps a rendered fragment into a standalone HTML file that
// mail clients open as an attachment. PDF output would slot in behind the
// same renderer interface.
const documentShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 2em; color: #1a1a1a; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #c9c9c9; padding: 6px 12px; text-align: left; }
th { background: #f2f2f2; }
h1, h2 { color: #2c3e50; }
</style>
</head>
<body>
<h1>%s</h1>
%s
</body>
</html>
`

// HTMLRenderer turns Markdown report content into sanitized HTML, either as
// an inline fragment for the {{report}} variable or as a standalone document
// attachment.
type HTMLRenderer struct {
	markdown markdown.Service
}

func NewHTMLRenderer(markdownSvc markdown.Service) *HTMLRenderer {
	return &HTMLRenderer{markdown: markdownSvc}
}

func (r *HTMLRenderer) RenderFragment(content string) (string, error) {
	fragment, err := r.markdown.ToHTMLSanitized(content)
	if err != nil {
		return "", fmt.Errorf("failed to render report fragment: %w", err)
	}
	return fragment, nil
}

func (r *HTMLRenderer) RenderDocument(title, content string) ([]byte, error) {
	fragment, err := r.RenderFragment(content)
	if err != nil {
		return nil, err
	}

	escapedTitle := html.EscapeString(title)
	doc := fmt.Sprintf(documentShell, escapedTitle, escapedTitle, fragment)
	return []byte(doc), nil
}
