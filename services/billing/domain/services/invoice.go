// Package services holds billing domain logic that does not belong to a
// single aggregate: the invoice renderer.
package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/ezzystore/partsledger/services/billing/domain"
	"github.com/ezzystore/partsledger/services/billing/domain/models"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var invoiceTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// Layout selects one of the two printable invoice documents.
type Layout string

const (
	// LayoutA4 is the full-page document with 2-decimal currency amounts.
	LayoutA4 Layout = "a4"
	// LayoutCompact is the narrow document with 3-decimal amounts.
	LayoutCompact Layout = "compact"
)

// ParseLayout maps a query value to a Layout. Empty selects LayoutA4.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "", string(LayoutA4):
		return LayoutA4, nil
	case string(LayoutCompact):
		return LayoutCompact, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownLayout, s)
	}
}

type invoiceLine struct {
	SerialNo   int
	PartNumber string
	PartName   string
	Quantity   int
	UnitPrice  string
	Amount     string
}

type invoiceView struct {
	Title        string
	BillNumber   string
	CustomerName string
	Date         string
	Lines        []invoiceLine
	SubTotal     string
	Discount     string
	NetAmount    string
	TotalQty     int
}

// RenderInvoice produces the printable HTML document for a bill. It is a
// pure function of its inputs, so rendering the same bill twice yields
// identical bytes.
func RenderInvoice(bill *models.Bill, layout Layout) ([]byte, error) {
	var (
		tmplName string
		amount   func(decimal.Decimal) string
	)
	switch layout {
	case LayoutA4:
		tmplName = "invoice_a4.html.tmpl"
		amount = func(d decimal.Decimal) string { return "₹" + d.StringFixed(2) }
	case LayoutCompact:
		tmplName = "invoice_compact.html.tmpl"
		amount = func(d decimal.Decimal) string { return d.StringFixed(3) }
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLayout, layout)
	}

	view := invoiceView{
		Title:        "Invoice_" + bill.BillNumber,
		BillNumber:   bill.BillNumber,
		CustomerName: bill.CustomerName,
		Date:         bill.CreatedAt.Format("02/01/2006"),
		SubTotal:     amount(bill.TotalAmount),
		Discount:     amount(decimal.Zero),
		NetAmount:    amount(bill.TotalAmount),
		TotalQty:     bill.TotalQuantity(),
	}
	for i, item := range bill.Items {
		view.Lines = append(view.Lines, invoiceLine{
			SerialNo:   i + 1,
			PartNumber: item.PartNumber,
			PartName:   item.PartName,
			Quantity:   item.Quantity,
			UnitPrice:  amount(item.UnitPrice),
			Amount:     amount(item.TotalPrice),
		})
	}

	var buf bytes.Buffer
	if err := invoiceTemplates.ExecuteTemplate(&buf, tmplName, view); err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}
