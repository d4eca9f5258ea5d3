package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
)

// RenderText writes s as plain text for a terminal.
func RenderText(w io.Writer, s State) error {
	var b strings.Builder

	switch s.Active {
	case ListView:
		b.WriteString("== Blog Posts ==\n")
		if s.List.Error != "" {
			fmt.Fprintf(&b, "! %s\n", s.List.Error)
		}
		if s.List.Placeholder != "" {
			b.WriteString(s.List.Placeholder + "\n")
		}
		for i, row := range s.List.Rows {
			fmt.Fprintf(&b, "%2d. %s  [%s]\n", i+1, row.Title, row.Identifier)
		}
	case DetailView:
		if s.Detail.Error != "" {
			fmt.Fprintf(&b, "! %s\n", s.Detail.Error)
		}
		if s.Detail.Placeholder != "" {
			b.WriteString(s.Detail.Placeholder + "\n")
		}
		if a := s.Detail.Article; a != nil {
			fmt.Fprintf(&b, "== %s ==\nBy %s on %s\n\n%s\n", a.Title, a.Author, a.Date, a.Content)
		}
		b.WriteString("\n[b] Back to list\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Simple Blog</title>
<style>.hidden { display: none; } .error { color: #b00020; }</style>
</head>
<body>
<div id="blog-list-container"{{if ne .Active "list"}} class="hidden"{{end}}>
  <h1>Blog Posts</h1>
  <p id="list-error" class="error{{if not .List.Error}} hidden{{end}}">{{.List.Error}}</p>
  <ul id="blog-list">
    {{- if .List.Placeholder}}
    <li>{{.List.Placeholder}}</li>
    {{- end}}
    {{- range .List.Rows}}
    <li data-identifier="{{.Identifier}}">{{.Title}}</li>
    {{- end}}
  </ul>
</div>
<div id="blog-detail-container"{{if ne .Active "detail"}} class="hidden"{{end}}>
  <button id="back-button">Back to List</button>
  <p id="detail-error" class="error{{if not .Detail.Error}} hidden{{end}}">{{.Detail.Error}}</p>
  <div id="blog-detail">
    {{- if .Detail.Placeholder}}
    <p>{{.Detail.Placeholder}}</p>
    {{- end}}
    {{- with .Detail.Article}}
    <h2>{{.Title}}</h2>
    <p style="font-size: 0.9em; color: #555">By <strong>{{.Author}}</strong> on {{.Date}}</p>
    <p>{{.Content}}</p>
    {{- end}}
  </div>
</div>
</body>
</html>
`))

// RenderHTML writes s as a standalone HTML page. With minified set the page
// is passed through the HTML minifier.
func RenderHTML(w io.Writer, s State, minified bool) error {
	if !minified {
		return pageTemplate.Execute(w, s)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, s); err != nil {
		return err
	}

	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)
	m.AddFunc("text/css", mincss.Minify)
	return m.Minify("text/html", w, &buf)
}
