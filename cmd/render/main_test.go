package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = "datetime,symbol,buy_exchange,sell_exchange,buy_price,sell_price,profit,profit_%\r\n" +
	"2024-01-01 10:00:00,BTC/USDT,KuCoin,Binance,100.0,101.0,1.0,1.0\r\n" +
	"2024-01-01 11:00:00,ETH/USDT,Binance,KuCoin,10.0,11.0,1.0,10.0\r\n"

// setupConfig writes a config.yml whose feed points at baseURL.
func setupConfig(t *testing.T, baseURL string) string {
	dir := t.TempDir()
	yml := "logger:\n  level: error\nfeed:\n  base_url: " + baseURL + "\n  path: orders.csv\npage:\n  title: Test\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644))
	return dir
}

func TestRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(testCSV))
	}))
	defer server.Close()

	t.Run("Stdout", func(t *testing.T) {
		var buf bytes.Buffer

		err := run(context.Background(), []string{"-configs", setupConfig(t, server.URL+"/")}, &buf)

		require.NoError(t, err)
		doc, err := goquery.NewDocumentFromReader(&buf)
		require.NoError(t, err)
		headings := doc.Find("#content .card h2")
		require.Equal(t, 2, headings.Length())
		assert.Equal(t, "ETH/USDT", headings.Eq(0).Text())
	})

	t.Run("Output file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "index.html")
		var buf bytes.Buffer

		err := run(context.Background(), []string{"-configs", setupConfig(t, server.URL+"/"), "-out", out}, &buf)

		require.NoError(t, err)
		assert.Zero(t, buf.Len())
		raw, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "<h2>BTC/USDT</h2>")
	})

	t.Run("Missing resource writes nothing", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "index.html")

		err := run(context.Background(), []string{"-configs", setupConfig(t, server.URL+"/missing/"), "-out", out}, &bytes.Buffer{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.NoFileExists(t, out)
	})
}
