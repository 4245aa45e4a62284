package handlers

import "html/template"

// indexPageData contains data for the index page
type indexPageData struct {
	Title string
	Port  int
}

var indexTemplate = template.Must(template.New("index").Parse(indexTemplateHTML))

const indexTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
            max-width: 640px;
            margin: 4rem auto;
            padding: 0 1rem;
            color: #24292f;
        }
        h1 { font-size: 1.5rem; }
        code {
            background: #f6f8fa;
            border-radius: 4px;
            padding: 0.1rem 0.3rem;
        }
        ul { line-height: 1.8; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <p>Serving on port <code>{{.Port}}</code>.</p>
    <ul>
        <li><code>GET /</code> &mdash; greeting</li>
        <li><code>GET /hostname</code> &mdash; machine hostname</li>
        <li><code>GET /health</code> &mdash; health check</li>
        <li><code>GET /info</code> &mdash; runtime information</li>
    </ul>
</body>
</html>
`
