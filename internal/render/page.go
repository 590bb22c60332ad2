package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// pageData feeds the standalone report template.
type pageData struct {
	Title       string
	Model       string
	GeneratedAt string
	Content     template.HTML
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} — LegalMind analysis</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; color: #1f2328; margin: 0; }
  main { max-width: 860px; margin: 0 auto; padding: 2rem 1.5rem 4rem; }
  header { border-bottom: 1px solid #d1d9e0; padding-bottom: 1rem; margin-bottom: 1.5rem; }
  header h1 { margin: 0 0 .25rem; font-size: 1.4rem; }
  header p { margin: 0; color: #59636e; font-size: .85rem; }
  table { border-collapse: collapse; margin: 1rem 0; }
  th, td { border: 1px solid #d1d9e0; padding: .4rem .75rem; text-align: left; }
  pre { background: #f6f8fa; padding: .75rem; border-radius: 6px; overflow-x: auto; }
  .severity { padding: 0 .2em; border-radius: 3px; font-weight: 600; }
  .severity-critical { background: #ffd8d3; color: #a40e26; }
  .severity-moderate { background: #fff3c2; color: #7a5901; }
</style>
</head>
<body>
<main>
<header>
<h1>{{.Title}}</h1>
<p>Analyzed with {{.Model}} · {{.GeneratedAt}}</p>
</header>
{{.Content}}
</main>
</body>
</html>
`))

// ReportPage wraps an already rendered and highlighted summary in a
// standalone HTML page for the one-shot CLI commands.
func ReportPage(filename, model, summaryHTML string) ([]byte, error) {
	var buf bytes.Buffer
	err := reportTmpl.Execute(&buf, pageData{
		Title:       filename,
		Model:       model,
		GeneratedAt: time.Now().Format("Jan 2, 2006 15:04"),
		Content:     template.HTML(summaryHTML),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering report page: %w", err)
	}
	return buf.Bytes(), nil
}
