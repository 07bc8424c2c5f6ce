package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventfin/event_finance_app/internal/apperrors"
	"github.com/eventfin/event_finance_app/internal/core/domain"
	"github.com/eventfin/event_finance_app/internal/export"
)

const queryDateLayout = "2006-01-02"

// respondError converts a service error into the error response. Validation
// failures, missing ids and store failures all collapse to 400 with the error
// string; callers discriminate on the message, not the status code.
func respondError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// parseIDParam parses the :id path segment as a decimal int64.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id " + raw)
	}
	return id, nil
}

// parseDateQuery parses an optional YYYY-MM-DD query value.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(queryDateLayout, raw)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid " + name + " date " + raw + ", expected YYYY-MM-DD")
	}
	return &t, nil
}

// parseRangeQuery parses the optional start/end window.
func parseRangeQuery(c *gin.Context) (domain.DateRange, error) {
	start, err := parseDateQuery(c, "start")
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := parseDateQuery(c, "end")
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{Start: start, End: end}, nil
}

// parseOptionalIDQuery parses the optional id query value.
func parseOptionalIDQuery(c *gin.Context) (*int64, error) {
	raw := c.Query("id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid id " + raw)
	}
	return &id, nil
}

// serveDocument writes an export payload as an attachment download.
func serveDocument(c *gin.Context, doc export.Document) {
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

// parseLedgerFilterQuery builds the shared list/export selection from the
// query string. The same filter feeds both paths, so a list page and its
// export always agree on the row set.
func parseLedgerFilterQuery(c *gin.Context, entryType domain.EntryType) (domain.LedgerFilter, error) {
	dateRange, err := parseRangeQuery(c)
	if err != nil {
		return domain.LedgerFilter{}, err
	}
	id, err := parseOptionalIDQuery(c)
	if err != nil {
		return domain.LedgerFilter{}, err
	}
	return domain.LedgerFilter{
		EntryType: entryType,
		ID:        id,
		Range:     dateRange,
		Category:  c.Query("category"),
	}, nil
}
