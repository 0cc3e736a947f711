package web

// pageHeader and pageFooter wrap every view. Views are deliberately
// plain server-rendered HTML; all interactivity goes through forms and
// the JSON API.
const pageHeader = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>paperdesk</title>
  <style>
    body { font-family: Georgia, serif; max-width: 60rem; margin: 0 auto; padding: 1rem 2rem; color: #1d2129; }
    nav { border-bottom: 1px solid #ccc; padding-bottom: 0.5rem; margin-bottom: 1.5rem; }
    nav a { margin-right: 1.5rem; color: #205080; text-decoration: none; }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: left; vertical-align: top; }
    th { background: #f4f4f4; }
    input[type=text], textarea { width: 100%; padding: 0.4rem; box-sizing: border-box; }
    button { padding: 0.4rem 1rem; margin-top: 0.5rem; }
    .paper-title { font-size: 1.6rem; }
    .paper-author { font-style: italic; }
    .reference { font-size: 0.9rem; }
    .math { font-style: italic; }
    .preview, .section-body { border: 1px solid #eee; background: #fafafa; padding: 1rem; margin: 0.5rem 0; }
    .suggestion { margin: 0.25rem 0; }
  </style>
</head>
<body>
<nav>
  <a href="/">Topic</a>
  <a href="/search">Literature</a>
  <a href="/draft">Draft</a>
</nav>
<main>
`

const pageFooter = `</main>
</body>
</html>
`

const topicBody = `<h1>Research Topic</h1>
{{if .Topic}}<p>Current topic: <strong>{{.Topic}}</strong></p>{{end}}
<form method="post" action="/topic">
  <label for="topic">What are you writing about?</label>
  <input type="text" id="topic" name="topic" value="{{.Topic}}" placeholder="e.g. federated learning on edge devices">
  <button type="submit">Save topic</button>
</form>
`

const searchBody = `<h1>Literature Search</h1>
{{if .Topic}}<p>Topic: <strong>{{.Topic}}</strong></p>{{end}}
<form method="get" action="/search">
  <input type="text" name="q" value="{{.Query}}" placeholder="Search query">
  <button type="submit">Search</button>
</form>
{{if .Results}}
<p>{{len .Results}} results.
  <a href="/api/search/export.csv">Export CSV</a> &middot;
  <a href="/api/search/export.json">Export JSON</a>
</p>
<table>
  <thead><tr><th>Title</th><th>Authors</th><th>Year</th><th>Venue</th><th>Score</th></tr></thead>
  <tbody>
  {{range .Results}}
    <tr>
      <td>{{if .Link}}<a href="{{.Link}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</td>
      <td>{{.Authors}}</td>
      <td>{{.Year}}</td>
      <td>{{.Venue}}</td>
      <td>{{printf "%.3f" .Score}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
{{else if .Query}}
<p>No results.</p>
{{end}}
`

const draftBody = `<h1>Draft</h1>
{{if not .Topic}}
<p>No topic set yet. <a href="/">Choose one first.</a></p>
{{else}}
<p>Topic: <strong>{{.Topic}}</strong>{{if .Title}} &middot; Title: <strong>{{.Title}}</strong>{{end}}</p>

<h2>Title</h2>
<form method="post" action="/draft/suggest">
  <button type="submit">Suggest titles</button>
</form>
{{range .Suggestions}}
<form method="post" action="/draft/title" class="suggestion">
  <input type="hidden" name="title" value="{{.}}">
  <button type="submit">Use</button> {{.}}
</form>
{{end}}
<form method="post" action="/draft/title">
  <input type="text" name="title" value="{{.Title}}" placeholder="Or type a title">
  <button type="submit">Set title</button>
</form>

<h2>Outline</h2>
<form method="post" action="/draft/outline">
  <select name="paper_type">
    <option value="standard" {{if eq .PaperType "standard"}}selected{{end}}>Standard</option>
    <option value="review" {{if eq .PaperType "review"}}selected{{end}}>Literature review</option>
    <option value="case_study" {{if eq .PaperType "case_study"}}selected{{end}}>Case study</option>
    <option value="proposal" {{if eq .PaperType "proposal"}}selected{{end}}>Proposal</option>
  </select>
  <button type="submit">Generate outline</button>
</form>
{{if .OutlineHTML}}<div class="preview">{{.OutlineHTML}}</div>{{end}}

<h2>Paper</h2>
<form method="post" action="/draft/paper">
  <button type="submit">Generate full paper</button>
</form>
{{range .Sections}}
<h3>{{.Heading}}</h3>
<div class="section-body">{{.HTML}}</div>
{{end}}

{{if .LaTeX}}
<h2>LaTeX Source</h2>
<textarea rows="12" readonly>{{.LaTeX}}</textarea>
<form method="post" action="/draft/compile">
  <button type="submit">Compile preview</button>
</form>
{{end}}

{{if .PreviewHTML}}
<h2>LaTeX Preview</h2>
<div class="preview">{{.PreviewHTML}}</div>
{{end}}
{{end}}
`
