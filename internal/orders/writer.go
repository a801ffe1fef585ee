package orders

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"arbitrage-dashboard-go/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Entry is one executed arbitrage opportunity before formatting.
type Entry struct {
	Time             time.Time
	Symbol           string
	BuyExchange      string
	SellExchange     string
	BuyPrice         float64
	SellPrice        float64
	Profit           float64
	ProfitPercentage float64
}

// Record formats the entry the way it is stored in orders.csv.
func (e Entry) Record() models.TradeRecord {
	return models.TradeRecord{
		Timestamp:        e.Time.Format(timestampLayout),
		Token:            e.Symbol,
		BuyExchange:      e.BuyExchange,
		SellExchange:     e.SellExchange,
		BuyPrice:         formatFloat(e.BuyPrice, 6),
		SellPrice:        formatFloat(e.SellPrice, 6),
		Profit:           formatFloat(e.Profit, 6),
		ProfitPercentage: formatFloat(e.ProfitPercentage, 4),
	}
}

// Writer appends arbitrage entries to orders.csv.
type Writer struct {
	mu   sync.Mutex
	path string
}

// NewWriter creates a writer for the CSV file at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Append writes e as a new line, adding the header when the file is new.
func (w *Writer) Append(e Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := os.Stat(w.path)
	isNew := errors.Is(err, fs.ErrNotExist)
	if err != nil && !isNew {
		return fmt.Errorf("failed to stat %s: %w", w.path, err)
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.UseCRLF = true
	if isNew {
		if err := cw.Write(models.Header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := cw.Write(e.Record().Fields()); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// formatFloat rounds to prec decimals and prints the shortest form that keeps
// a decimal point or exponent: 3020 -> "3020.0", 0.000012 -> "1.2e-05".
func formatFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}

	if abs := math.Abs(r); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(r, 'e', -1, 64)
	}

	s = strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(r, 0) && !math.IsNaN(r) {
		s += ".0"
	}
	return s
}
