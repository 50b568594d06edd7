package feed

import (
	"html/template"
	"io"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/render"
)

// Post pages live in posts/ and reach the shared stylesheet and home page
// one level up.
const postTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="../assets/style.css" />
  <meta name="robots" content="index,follow" />
</head>
<body>
  <main class="container">
    <a href="../index.html">↩ {{.Home}}</a>
    <article class="card" style="margin-top:12px">
      <div class="meta">{{.Date}}</div>
      <h1>{{.Title}}</h1>
      <p>{{.Summary}}</p>
      <p>{{.SourceLabel}}: <a href="{{.Source}}" rel="nofollow noopener" target="_blank">{{.Source}}</a></p>
      <p class="muted">{{.Notice}}</p>
    </article>
  </main>
</body>
</html>
`

var postPage = template.Must(template.New("post").Parse(postTemplate))

type postData struct {
	Lang        content.Language
	Dir         string
	Title       string
	Date        string
	Summary     string
	Source      string
	Home        string
	SourceLabel string
	Notice      string
}

// WritePost renders the standalone page for one summarized feed item.
func WritePost(w io.Writer, item Item, summary, date string, lang content.Language) error {
	return postPage.Execute(w, postData{
		Lang:        lang,
		Dir:         lang.Dir(),
		Title:       item.Title,
		Date:        date,
		Summary:     summary,
		Source:      item.Link,
		Home:        render.T(lang, render.MsgHome),
		SourceLabel: render.T(lang, render.MsgSource),
		Notice:      render.T(lang, render.MsgSummaryNotice),
	})
}
