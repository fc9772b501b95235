// Package templates renders the dashboard pages. Components are built on
// the templ runtime directly so the rendered HTML stays close to the
// datastar signal names the SSE handlers patch.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type navItem struct {
	Path  string
	Label string
}

var navItems = []navItem{
	{"/", "Overview"},
	{"/revenue", "Revenue"},
	{"/customers", "Customers"},
	{"/products", "Products"},
	{"/operations", "Operations"},
	{"/geography", "Geography"},
}

const pageStyles = `
body { font-family: 'Segoe UI', system-ui, sans-serif; margin: 0; background: #f4f6fa; color: #1a202c; }
header { background: #232f3e; color: #fff; padding: 16px 32px; display: flex; align-items: center; gap: 32px; }
header h1 { font-size: 1.2rem; margin: 0; }
nav a { color: #cbd5e0; text-decoration: none; margin-right: 20px; font-size: 0.95rem; }
nav a.active { color: #ff9900; font-weight: 600; }
main { padding: 24px 32px; max-width: 1400px; margin: 0 auto; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 16px; margin-bottom: 24px; }
.card { background: #fff; border-radius: 10px; padding: 20px; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
.card .label { font-size: 0.8rem; text-transform: uppercase; color: #718096; letter-spacing: 0.05em; }
.card .value { font-size: 1.6rem; font-weight: 700; margin-top: 4px; }
.panel { background: #fff; border-radius: 10px; padding: 24px; box-shadow: 0 1px 4px rgba(0,0,0,0.08); margin-bottom: 24px; }
.panel h2 { margin-top: 0; font-size: 1.05rem; }
.modern-table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
.modern-table th { text-align: left; padding: 10px 12px; background: #edf2f7; color: #4a5568; }
.modern-table td { padding: 10px 12px; border-bottom: 1px solid #e2e8f0; }
.segment-badge, .category-badge, .tier-badge { background: #ebf4ff; color: #2b6cb0; border-radius: 6px; padding: 2px 8px; font-size: 0.85rem; }
.chart { min-height: 320px; }
.refresh-btn { background: #ff9900; color: #232f3e; border: none; border-radius: 6px; padding: 8px 16px; font-weight: 600; cursor: pointer; }
`

// Shell wraps a page body with the chrome shared by every dashboard page.
func Shell(title, activePath string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · Ecom Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"></script>
<script src="https://cdn.jsdelivr.net/npm/apexcharts"></script>
<style>%s</style>
</head>
<body>
<header>
<h1>🛒 E-Commerce Intelligence</h1>
<nav>`, templ.EscapeString(title), pageStyles); err != nil {
			return err
		}
		for _, item := range navItems {
			class := ""
			if item.Path == activePath {
				class = ` class="active"`
			}
			if _, err := fmt.Fprintf(w, `<a href="%s"%s>%s</a>`, item.Path, class, item.Label); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</nav>
<button class="refresh-btn" data-on-click="@get('/sse/refresh-all')">Refresh</button>
</header>
<main>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
</body>
</html>`)
		return err
	})
}

// raw emits a trusted HTML fragment as a component.
func raw(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// metricCard renders one KPI tile bound to a datastar signal expression.
func metricCard(label, signalExpr string) string {
	return fmt.Sprintf(`<div class="card"><div class="label">%s</div><div class="value" data-text="%s">—</div></div>`,
		label, signalExpr)
}
