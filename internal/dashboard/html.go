package dashboard

import (
	"html/template"
	"io"
)

// Assets holds the URLs of the static images shown on the page.
// Empty URLs are omitted.
type Assets struct {
	Logo     string
	Pipeline string
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// pageData is the template input.
type pageData struct {
	*Page
	Assets Assets
}

// WriteHTML renders page as a complete HTML document.
func WriteHTML(w io.Writer, page *Page, assets Assets) error {
	return pageTemplate.Execute(w, pageData{Page: page, Assets: assets})
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>EUncover{{if .Profile}} | {{.Selection}}{{end}}</title>
<style>
  * { box-sizing: border-box; }
  body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
         background: #0e1117; color: #fafafa; display: flex; min-height: 100vh; }
  a { color: #4ea8de; }
  aside { width: 260px; padding: 1.5rem 1rem; background: #262730; flex-shrink: 0; }
  aside img { width: 100%; }
  aside .caption { text-align: center; color: #aaa; font-size: 0.85rem; }
  select { width: 100%; padding: 0.4rem; font-size: 1rem; }
  main { flex: 1; padding: 1rem 2rem; display: flex; gap: 1.5rem; }
  .col-side { flex: 1.5; min-width: 0; }
  .col-main { flex: 5; min-width: 0; }
  .welcome { max-width: 900px; }
  hr { border: none; border-top: 1px solid #444; margin: 1.2rem 0; }
  .error { background: #3e1f1f; color: #ff9b9b; padding: 0.6rem 0.8rem; border-radius: 4px; }
  table { border-collapse: collapse; width: 100%; margin-bottom: 1rem; font-size: 0.9rem; }
  th, td { border: 1px solid #444; padding: 0.35rem 0.5rem; text-align: left; vertical-align: top; }
  th { background: #262730; }
  iframe { width: 100%; height: 770px; border: none; }
  .legend { padding: 10px; border: 1px solid #ccc; border-radius: 5px; }
  .legend ul { list-style: none; padding-left: 0; }
  .swatch { display: inline-block; width: 1.6rem; height: 1rem; border-radius: 3px; margin-right: 10px; vertical-align: middle; }
  .articles p { font-size: 12px; margin: 0.3rem 0; }
</style>
</head>
<body>
<aside>
  {{if .Assets.Logo}}<img src="{{.Assets.Logo}}" alt="EUncover logo"><div class="caption">EUncover</div>{{end}}
  <h2>Select an Irish MEP</h2>
  <form method="get" action="/">
    <label for="mep">Select a person:</label>
    <select id="mep" name="mep" onchange="this.form.submit()">
      {{- $sel := .Selection}}
      {{- range .Options}}
      <option value="{{.}}"{{if eq . $sel}} selected{{end}}>{{.}}</option>
      {{- end}}
    </select>
    <noscript><button type="submit">Show</button></noscript>
  </form>
  <p>The website will display information about the MEP you selected.</p>
</aside>
<main>
{{- with .Welcome}}
  <div class="welcome">
    <h1>{{.Title}}</h1>
    <h3><em>{{.Subtitle}}</em></h3>
    {{- range .Blocks}}
    <hr>
    <h2>{{.Heading}}</h2>
    {{- range .Paragraphs}}<p>{{.}}</p>{{end}}
    {{- if .Items}}<ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{- range .Links}}<p><a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a></p>{{end}}
    {{- end}}
    {{- if $.Assets.Pipeline}}
    <img src="{{$.Assets.Pipeline}}" alt="Overview of data provenance and pipeline" width="900">
    {{- end}}
  </div>
{{- end}}
{{- with .Profile}}
  <section class="col-side">
    <h4>Information about {{.Name}}</h4>
    {{- if .Error}}<p class="error">{{.Error.Message}}</p>{{end}}
    {{- if .HasDetails}}
    <p><strong>Representing Country:</strong> {{.Country}}</p>
    <p><strong>National party:</strong> {{.Party}}</p>
    <p><strong>EU party:</strong> {{.EUGroup}}</p>
    <p><strong>EU Committees:</strong> {{.Committees}}</p>
    <p><strong>EU Delegations:</strong> {{.Delegations}}</p>
    {{- end}}
    <hr>
    <h4>Links to profiles:</h4>
    <ul>{{range .Links}}<li><a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a></li>{{end}}</ul>
  </section>
{{- end}}
{{- if .Declaration}}
  <section class="col-main">
    <h4>Declared Interest</h4>
    {{- with .Declaration}}
    {{- if .Error}}<p class="error">{{.Error.Message}}</p>{{end}}
    {{- with .Report}}
    <h4>{{.Heading}}</h4>
    {{- range .Sections}}
    <h5>{{.Title}}</h5>
    {{- if .Table}}
    <table>
      <tr>{{range .Table.Columns}}<th>{{.}}</th>{{end}}</tr>
      {{- range .Table.Rows}}
      <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
      {{- end}}
    </table>
    {{- else if .Text}}<p>{{.Text}}</p>
    {{- else}}<p>{{.Fallback}}</p>{{end}}
    {{- end}}
    {{- end}}
    {{- end}}
    <hr>
    <h4>MEP Consolidated Interest Map</h4>
    {{- with .Network}}
    {{- if .Error}}<p class="error">{{.Error.Message}}</p>
    {{- else}}
    <p>To see labels and relations interact with the graph! For categories of nodes see the legend below.</p>
    {{- if .Dangling}}<p class="error">{{.Dangling}} relation(s) point to entities missing from this network and are not drawn.</p>{{end}}
    <iframe title="Network of {{$.Selection}}" srcdoc="{{.HTML}}"></iframe>
    {{- end}}
    <hr>
    <div class="legend">
      <strong>Legend: Node Types</strong>
      <ul>{{range .Legend}}<li><span class="swatch" style="background-color: {{.Color}}"></span>{{.Type}}</li>{{end}}</ul>
    </div>
    {{- end}}
  </section>
{{- end}}
{{- with .Articles}}
  <section class="col-side articles">
    <h4>Featured in Articles</h4>
    <p><strong>Links to recent news articles:</strong></p>
    {{- if .Error}}<p class="error">{{.Error.Message}}</p>
    {{- else if .Message}}<p>{{.Message}}</p>
    {{- else}}
    {{- range .Articles}}<p>&bull; <a href="{{.Link}}" target="_blank" rel="noopener">{{.Title}}</a></p>{{end}}
    {{- end}}
    <hr>
    <h4>About this site:</h4>
    <p>{{$.About}}</p>
  </section>
{{- end}}
</main>
</body>
</html>
`
