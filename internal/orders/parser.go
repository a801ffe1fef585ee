package orders

import (
	"slices"
	"strings"

	"arbitrage-dashboard-go/internal/models"
)

// RowIssue describes a data line whose field count differs from models.FieldCount.
// Line is 1-based and counts the header.
type RowIssue struct {
	Line   int
	Fields int
}

// Parse turns the raw orders.csv text into records, newest first.
// The header line is dropped. Lines are split on plain commas; quoting is not supported.
// Rows with the wrong number of fields are still returned and reported as issues.
func Parse(text string) ([]models.TradeRecord, []RowIssue) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")[1:]

	records := make([]models.TradeRecord, 0, len(lines))
	var issues []RowIssue
	for i, line := range lines {
		fields := strings.Split(strings.TrimSuffix(line, "\r"), ",")
		if len(fields) != models.FieldCount {
			issues = append(issues, RowIssue{Line: i + 2, Fields: len(fields)})
		}
		records = append(records, models.NewTradeRecord(fields))
	}

	slices.Reverse(records)
	return records, issues
}
