package report

import (
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/jpriva/orders_backend/internal/core/domain"
)

var inventoryTmpl = template.Must(template.New("inventory").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Inventory Report - {{.CompanyName}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 20px; margin-bottom: 2px; }
p.meta { color: #666; font-size: 12px; margin-top: 0; }
table { width: 100%; border-collapse: collapse; font-size: 12px; }
th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; }
th { background: #f0f0f0; }
td.num { text-align: right; }
</style>
</head>
<body>
<h1>Inventory Report - {{.CompanyName}}</h1>
<p class="meta">Generated at {{.GeneratedAt}}</p>
<table>
<thead>
<tr><th>SKU</th><th>Product</th><th>Stock</th><th>Prices</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.SKU}}</td><td>{{.Name}}</td><td class="num">{{.Stock}}</td><td>{{.Prices}}</td></tr>
{{else}}<tr><td colspan="4">No products</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type inventoryRow struct {
	SKU    string
	Name   string
	Stock  int64
	Prices string
}

type inventoryView struct {
	CompanyName string
	GeneratedAt string
	Rows        []inventoryRow
}

// InventoryHTML builds the HTML document for a company's inventory report.
// Prices are listed per currency in code order.
func InventoryHTML(company domain.Company, products []domain.Product, generatedAt time.Time) (string, error) {
	view := inventoryView{
		CompanyName: company.Name,
		GeneratedAt: generatedAt.Format(time.RFC1123),
		Rows:        make([]inventoryRow, 0, len(products)),
	}

	for _, p := range products {
		codes := make([]string, 0, len(p.Prices))
		for code := range p.Prices {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		parts := make([]string, 0, len(codes))
		for _, code := range codes {
			parts = append(parts, code+" "+p.Prices[code].StringFixed(2))
		}

		view.Rows = append(view.Rows, inventoryRow{
			SKU:    p.SKU,
			Name:   p.Name,
			Stock:  p.StockQuantity,
			Prices: strings.Join(parts, ", "),
		})
	}

	var sb strings.Builder
	if err := inventoryTmpl.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}
