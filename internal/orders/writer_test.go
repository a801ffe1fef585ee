package orders

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	w := NewWriter(path)

	first := Entry{
		Time:             time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Symbol:           "ETH/USDT",
		BuyExchange:      "KuCoin",
		SellExchange:     "Binance",
		BuyPrice:         3000.1234567,
		SellPrice:        3020,
		Profit:           19.8765433,
		ProfitPercentage: 0.66254321,
	}
	second := first
	second.Symbol = "BTC/USDT"

	require.NoError(t, w.Append(first))
	require.NoError(t, w.Append(second))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := header + "\r\n" +
		"2024-05-01 12:30:00,ETH/USDT,KuCoin,Binance,3000.123457,3020.0,19.876543,0.6625\r\n" +
		"2024-05-01 12:30:00,BTC/USDT,KuCoin,Binance,3000.123457,3020.0,19.876543,0.6625\r\n"
	assert.Equal(t, expected, string(raw))

	records, issues := Parse(string(raw))
	require.Len(t, records, 2)
	assert.Empty(t, issues)
	assert.Equal(t, "BTC/USDT", records[0].Token)
	assert.Equal(t, "0.6625", records[0].ProfitPercentage)
}

func TestEntryRecordNumberFormat(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		prec     int
		expected string
	}{
		{name: "Integral price keeps one decimal", value: 3020, prec: 6, expected: "3020.0"},
		{name: "Integral percentage keeps one decimal", value: 5, prec: 4, expected: "5.0"},
		{name: "Zero", value: 0, prec: 6, expected: "0.0"},
		{name: "Rounded to precision", value: 1.23456789, prec: 4, expected: "1.2346"},
		{name: "Trailing zeros dropped", value: 1.05, prec: 6, expected: "1.05"},
		{name: "Small value uses exponent", value: 0.000012, prec: 6, expected: "1.2e-05"},
		{name: "Boundary stays decimal", value: 0.0001, prec: 6, expected: "0.0001"},
		{name: "Negative", value: -2.5, prec: 6, expected: "-2.5"},
		{name: "Rounds away below precision", value: 0.0000001, prec: 6, expected: "0.0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatFloat(tc.value, tc.prec))
		})
	}

	rec := Entry{Symbol: "ABC", BuyPrice: 3020, SellPrice: 3171, Profit: 151, ProfitPercentage: 5}.Record()
	assert.Equal(t, "3020.0", rec.BuyPrice)
	assert.Equal(t, "151.0", rec.Profit)
	assert.Equal(t, "5.0", rec.ProfitPercentage)
}
