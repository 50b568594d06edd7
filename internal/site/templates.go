package site

// pageTemplate is the html/template for every rendered page.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  {{- with .Description}}
  <meta name="description" content="{{.}}">
  {{- end}}
  <link rel="stylesheet" href="{{.StaticBase}}style.css">
</head>
<body data-variant="{{.Variant}}"{{with .LiveURL}} data-live="{{.}}"{{end}}>
  <header class="site-header">
    <div class="container header-row">
      <div class="brand">
        <h1 id="site-title">{{.Title}}</h1>
        <p id="site-description">{{.Description}}</p>
      </div>
      <nav class="site-nav">
        <a href="{{.Links.Posts}}" class="nav-link{{if eq .Variant "posts"}} active{{end}}">{{.Labels.Posts}}</a>
        <a href="{{.Links.Tools}}" class="nav-link{{if eq .Variant "tools"}} active{{end}}">{{.Labels.Tools}}</a>
        <a href="{{.Links.Toggle}}" id="lang-toggle" class="lang-toggle">{{.ToggleLabel}}</a>
      </nav>
    </div>
  </header>
  <main class="container">
    <div id="page-error" class="error-banner{{if not .Error}} is-hidden{{end}}" role="alert">{{.Error}}</div>
    {{- if .Searchable}}
    <form id="search-form" class="search-bar" action="{{.Links.Search}}" method="get">
      <input type="hidden" name="lang" value="{{.Lang}}">
      <input id="search" type="search" name="q" value="{{.Query}}" placeholder="{{.Labels.SearchPlaceholder}}" autocomplete="off">
      <a id="clear-search" href="{{.Links.Clear}}" class="clear-search">{{.Labels.Clear}}</a>
    </form>
    {{- end}}
    <section id="list" class="grid">{{.List}}</section>
  </main>
  <script src="{{.StaticBase}}site.js"></script>
</body>
</html>`

// cssContent is the stylesheet shared by every page.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --danger: #c92a2a;
  --danger-light: #fff5f5;
  --content-max-width: 1040px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1b26;
    --bg-secondary: #1f2030;
    --text: #c0caf5;
    --text-muted: #565f89;
    --border: #292e42;
    --accent: #7aa2f7;
    --accent-light: #1a1b2e;
    --danger: #f7768e;
    --danger-light: #2a1b26;
    --shadow: 0 1px 3px rgba(0,0,0,0.3);
  }
}

*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Tahoma, "Noto Naskh Arabic", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

.container { max-width: var(--content-max-width); margin: 0 auto; padding: 0 1.25rem; }

.site-header { border-bottom: 1px solid var(--border); background: var(--bg-secondary); padding: 1.25rem 0; }
.header-row { display: flex; align-items: center; justify-content: space-between; gap: 1rem; flex-wrap: wrap; }
.brand h1 { font-size: 1.5rem; }
.brand p { color: var(--text-muted); }
.site-nav { display: flex; align-items: center; gap: 1rem; }
.nav-link.active { font-weight: 600; }
.lang-toggle {
  border: 1px solid var(--border);
  border-radius: 999px;
  padding: 0.15rem 0.75rem;
  font-weight: 600;
}

main { padding: 1.5rem 1.25rem 3rem; }

.error-banner {
  background: var(--danger-light);
  color: var(--danger);
  border: 1px solid var(--danger);
  border-radius: 6px;
  padding: 0.75rem 1rem;
  margin-bottom: 1rem;
}
.is-hidden { display: none; }

.search-bar { display: flex; gap: 0.75rem; align-items: center; margin-bottom: 1.25rem; }
.search-bar input[type="search"] {
  flex: 1;
  padding: 0.5rem 0.75rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
  font-size: 1rem;
}

.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1rem; }
.card {
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 1rem;
  background: var(--bg);
  box-shadow: var(--shadow);
  display: flex;
  flex-direction: column;
  gap: 0.5rem;
}
.card h3 { font-size: 1.1rem; }
.card p { color: var(--text-muted); }
.card .meta { font-size: 0.85rem; color: var(--text-muted); }
.card .badge {
  align-self: flex-start;
  background: var(--accent-light);
  border-radius: 4px;
  padding: 0.1rem 0.6rem;
  margin-top: auto;
}
.card.is-hidden { display: none; }
.empty-state { grid-column: 1 / -1; text-align: center; color: var(--text-muted); padding: 2rem 0; }
`

// jsContent drives the live session when the page is served with a
// data-live endpoint and falls back to filtering the rendered cards
// in place on static builds.
const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var html = document.documentElement;
  var list = document.getElementById("list");
  var search = document.getElementById("search");
  var clear = document.getElementById("clear-search");
  var form = document.getElementById("search-form");
  var toggle = document.getElementById("lang-toggle");
  var errorBox = document.getElementById("page-error");
  var live = body.getAttribute("data-live");

  function debounce(fn, wait) {
    var t;
    return function() {
      var args = arguments;
      clearTimeout(t);
      t = setTimeout(function() { fn.apply(null, args); }, wait);
    };
  }

  // ===== Static pages: filter rendered cards =====
  function filterInPlace(q) {
    q = (q || "").trim().toLowerCase();
    list.querySelectorAll(".card").forEach(function(card) {
      var hay = card.getAttribute("data-search") || "";
      card.classList.toggle("is-hidden", q !== "" && hay.indexOf(q) === -1);
    });
  }

  if (!live) {
    if (search) {
      search.addEventListener("input", debounce(function() { filterInPlace(search.value); }, 120));
      filterInPlace(search.value);
    }
    if (clear) {
      clear.addEventListener("click", function(e) {
        e.preventDefault();
        search.value = "";
        filterInPlace("");
      });
    }
    if (form) {
      form.addEventListener("submit", function(e) { e.preventDefault(); });
    }
    return;
  }

  // ===== Live pages: state is pushed over the websocket =====
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var socket = new WebSocket(scheme + location.host + live);

  function send(msg) {
    if (socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(msg));
    }
  }

  function applyState(s) {
    html.setAttribute("lang", s.lang);
    html.setAttribute("dir", s.dir);
    document.title = s.title;
    document.getElementById("site-title").textContent = s.title;
    document.getElementById("site-description").textContent = s.description;
    toggle.textContent = s.toggle_label;
    errorBox.textContent = s.error || "";
    errorBox.classList.toggle("is-hidden", !s.error);
    list.innerHTML = s.html;
  }

  socket.addEventListener("message", function(ev) {
    var msg;
    try { msg = JSON.parse(ev.data); } catch (e) { return; }
    if (msg.type === "state" && msg.state) {
      applyState(msg.state);
    } else if (msg.type === "error" && msg.error) {
      errorBox.textContent = msg.error;
      errorBox.classList.remove("is-hidden");
    }
  });

  toggle.addEventListener("click", function(e) {
    if (socket.readyState !== WebSocket.OPEN) { return; }
    e.preventDefault();
    send({ type: "toggle" });
  });

  if (search) {
    search.addEventListener("input", debounce(function() {
      send({ type: "search", query: search.value });
    }, 150));
    form.addEventListener("submit", function(e) {
      if (socket.readyState !== WebSocket.OPEN) { return; }
      e.preventDefault();
      send({ type: "search", query: search.value });
    });
  }
  if (clear) {
    clear.addEventListener("click", function(e) {
      if (socket.readyState !== WebSocket.OPEN) { return; }
      e.preventDefault();
      search.value = "";
      send({ type: "clear" });
    });
  }
})();
`
