// Package export serializes ledger and stock row sets into downloadable
// documents. Three formats share one canonical column order per subject: plain
// CSV, and HTML tables served under Excel and Word content types.
package export

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// Format selects the output encoding.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatWord  Format = "word"
)

// ParseFormat maps the user-supplied format parameter to a Format, defaulting
// to CSV for anything unrecognized.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "excel", "xls":
		return FormatExcel
	case "word", "doc":
		return FormatWord
	default:
		return FormatCSV
	}
}

func (f Format) extension() string {
	switch f {
	case FormatExcel:
		return "xls"
	case FormatWord:
		return "doc"
	default:
		return "csv"
	}
}

func (f Format) contentType() string {
	switch f {
	case FormatExcel:
		return "application/vnd.ms-excel; charset=utf-8"
	case FormatWord:
		return "application/msword; charset=utf-8"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Document is a ready-to-serve export payload.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// LedgerExportParams names the export subject and echoes the active filter so
// the filename and the Word header reflect it.
type LedgerExportParams struct {
	Subject  string // "expenses" or "incomes"
	Start    string // raw query values, empty when unbounded
	End      string
	Category string
}

var ledgerHeader = []string{"Date", "Event", "Category", "Description", "Amount", "Currency", "Payment", "Counterparty", "ID"}

var stockHeader = []string{"Date", "Purchased by", "Payment", "Price (EUR/unit)", "Quantity", "Unit", "Total (EUR)", "Description", "ID"}

// LedgerDocument encodes a filtered ledger row set.
func LedgerDocument(entries []domain.LedgerEntry, p LedgerExportParams, format Format) Document {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			fmtDate(e.EntryDate),
			e.EventName,
			e.Category,
			e.Description,
			e.Amount.StringFixed(2),
			e.Currency,
			e.PaymentMethod,
			e.Counterparty,
			strconv.FormatInt(e.ID, 10),
		})
	}

	baseName := fmt.Sprintf("%s-%s-%s", p.Subject, orAll(p.Start), orAll(p.End))
	switch format {
	case FormatExcel:
		return document(baseName, format, htmlTable(baseName, "", "", ledgerHeader, rows))
	case FormatWord:
		title := strings.ToUpper(p.Subject[:1]) + p.Subject[1:] + " report"
		period := fmt.Sprintf("Period: %s to %s", orDash(p.Start), orDash(p.End))
		if p.Category != "" {
			period += ", Category: " + p.Category
		}
		return document(baseName, format, htmlTable(baseName, title, period, ledgerHeader, rows))
	default:
		return document(baseName, format, csvBody(ledgerHeader, rows))
	}
}

// StockDocument encodes a stock row set, applying the unit-aware precision
// rules: kg quantities carry 3 decimals, pcs none; price and total always 2.
func StockDocument(entries []domain.StockEntry, idFilter string, format Format) Document {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		unit := ParseUnit(e.Description)
		qty := e.WeightKg.StringFixed(3)
		if unit == UnitPcs {
			qty = e.WeightKg.StringFixed(0)
		}
		rows = append(rows, []string{
			fmtDate(e.PurchaseDate),
			e.PurchasedBy,
			e.PaymentMethod,
			e.PricePerKg.StringFixed(2),
			qty,
			unit,
			e.TotalCost().StringFixed(2),
			StripUnit(e.Description),
			strconv.FormatInt(e.ID, 10),
		})
	}

	baseName := "stock-" + orAll(idFilter)
	switch format {
	case FormatExcel:
		return document(baseName, format, htmlTable(baseName, "", "", stockHeader, rows))
	case FormatWord:
		return document(baseName, format, htmlTable(baseName, "Stock export", "", stockHeader, rows))
	default:
		return document(baseName, format, csvBody(stockHeader, rows))
	}
}

func document(baseName string, format Format, body string) Document {
	return Document{
		Filename:    baseName + "." + format.extension(),
		ContentType: format.contentType(),
		Body:        []byte(body),
	}
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// fmtDate renders YYYY-MM-DD; zero dates render empty rather than erroring.
func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// csvBody quotes every field, doubles embedded quotes and joins rows with CRLF,
// header first.
func csvBody(header []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvLine(header))
	for _, row := range rows {
		lines = append(lines, csvLine(row))
	}
	return strings.Join(lines, "\r\n")
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// htmlTable wraps the rows in the minimal document shell Excel and Word accept.
// Cell values are interpolated as escaped text nodes.
func htmlTable(title, heading, subheading string, header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>`)
	b.WriteString(html.EscapeString(title))
	b.WriteString(`</title></head><body>`)
	if heading != "" {
		b.WriteString("<h1>")
		b.WriteString(html.EscapeString(heading))
		b.WriteString("</h1>")
	}
	if subheading != "" {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(subheading))
		b.WriteString("</p>")
	}
	b.WriteString(`<table border="1"><tr>`)
	for _, h := range header {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(h))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table></body></html>")
	return b.String()
}
