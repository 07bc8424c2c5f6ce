package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

func ledgerEntry() domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:            12,
		EventName:     "Spring Gala",
		EntryType:     domain.EntryExpense,
		Category:      "Food, drink",
		Description:   `said "ok"`,
		Amount:        decimal.RequireFromString("99.5"),
		Currency:      "EUR",
		EntryDate:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "card",
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatCSV, ParseFormat(""))
	assert.Equal(t, FormatCSV, ParseFormat("csv"))
	assert.Equal(t, FormatCSV, ParseFormat("pdf"))
	assert.Equal(t, FormatExcel, ParseFormat("excel"))
	assert.Equal(t, FormatExcel, ParseFormat("XLS"))
	assert.Equal(t, FormatWord, ParseFormat("word"))
	assert.Equal(t, FormatWord, ParseFormat("doc"))
}

func TestLedgerDocument_CSV(t *testing.T) {
	doc := LedgerDocument([]domain.LedgerEntry{ledgerEntry()}, LedgerExportParams{Subject: "expenses"}, FormatCSV)

	assert.Equal(t, "expenses-all-all.csv", doc.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", doc.ContentType)

	lines := strings.Split(string(doc.Body), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Date","Event","Category","Description","Amount","Currency","Payment","Counterparty","ID"`, lines[0])
	// Every field quoted; embedded quotes doubled; empty fields still quoted
	assert.Equal(t, `"2026-05-01","Spring Gala","Food, drink","said ""ok""","99.50","EUR","card","","12"`, lines[1])
}

func TestLedgerDocument_FilenameReflectsFilter(t *testing.T) {
	params := LedgerExportParams{Subject: "incomes", Start: "2026-01-01", End: "2026-06-30"}
	doc := LedgerDocument(nil, params, FormatCSV)
	assert.Equal(t, "incomes-2026-01-01-2026-06-30.csv", doc.Filename)
}

func TestLedgerDocument_Excel(t *testing.T) {
	doc := LedgerDocument([]domain.LedgerEntry{ledgerEntry()}, LedgerExportParams{Subject: "expenses"}, FormatExcel)

	assert.Equal(t, "expenses-all-all.xls", doc.Filename)
	assert.Equal(t, "application/vnd.ms-excel; charset=utf-8", doc.ContentType)

	body := string(doc.Body)
	assert.Contains(t, body, `<table border="1">`)
	assert.Contains(t, body, "<th>Counterparty</th>")
	// Cell text is HTML-escaped
	assert.Contains(t, body, "said &#34;ok&#34;")
	assert.NotContains(t, body, "<h1>")
}

func TestLedgerDocument_WordCarriesTitleAndPeriod(t *testing.T) {
	params := LedgerExportParams{Subject: "expenses", Start: "2026-01-01", Category: "Rent"}
	doc := LedgerDocument(nil, params, FormatWord)

	assert.Equal(t, "expenses-2026-01-01-all.doc", doc.Filename)
	assert.Equal(t, "application/msword; charset=utf-8", doc.ContentType)

	body := string(doc.Body)
	assert.Contains(t, body, "<h1>Expenses report</h1>")
	assert.Contains(t, body, "Period: 2026-01-01 to —, Category: Rent")
}

func TestStockDocument_UnitPrecision(t *testing.T) {
	entries := []domain.StockEntry{
		{
			ID:            1,
			PricePerKg:    decimal.NewFromInt(4),
			WeightKg:      decimal.RequireFromString("2.5"),
			PurchaseDate:  time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
			Description:   "flour",
			PurchasedBy:   "Omar",
			PaymentMethod: "card",
		},
		{
			ID:            2,
			PricePerKg:    decimal.RequireFromString("1.5"),
			WeightKg:      decimal.NewFromInt(12),
			PurchaseDate:  time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC),
			Description:   "jars [unit:pcs]",
			PurchasedBy:   "Omar",
			PaymentMethod: "cash",
		},
	}

	doc := StockDocument(entries, "", FormatCSV)

	assert.Equal(t, "stock-all.csv", doc.Filename)
	lines := strings.Split(string(doc.Body), "\r\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Date","Purchased by","Payment","Price (EUR/unit)","Quantity","Unit","Total (EUR)","Description","ID"`, lines[0])
	// kg quantities carry 3 decimals, price and total always 2
	assert.Equal(t, `"2026-04-20","Omar","card","4.00","2.500","kg","10.00","flour","1"`, lines[1])
	// pcs quantities carry none; the marker is stripped from the description
	assert.Equal(t, `"2026-04-21","Omar","cash","1.50","12","pcs","18.00","jars","2"`, lines[2])
}

func TestStockDocument_IDFilterFilename(t *testing.T) {
	doc := StockDocument(nil, "7", FormatExcel)
	assert.Equal(t, "stock-7.xls", doc.Filename)
}

func TestParseUnit(t *testing.T) {
	assert.Equal(t, UnitKg, ParseUnit("flour"))
	assert.Equal(t, UnitKg, ParseUnit("flour [unit:kg]"))
	assert.Equal(t, UnitPcs, ParseUnit("jars [unit:pcs]"))
	assert.Equal(t, UnitPcs, ParseUnit("jars [UNIT:PCS]"))
	assert.Equal(t, UnitKg, ParseUnit(""))
}

func TestStripUnit(t *testing.T) {
	assert.Equal(t, "jars", StripUnit("jars [unit:pcs]"))
	assert.Equal(t, "jars", StripUnit("[unit:pcs] jars"))
	assert.Equal(t, "flour", StripUnit("flour"))
	assert.Equal(t, "", StripUnit("[unit:kg]"))
}
