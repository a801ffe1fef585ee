package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"arbitrage-dashboard-go/internal/config"
	"arbitrage-dashboard-go/internal/logger"
	"arbitrage-dashboard-go/internal/orders"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

// orderlog appends one arbitrage opportunity to the orders.csv file.
func main() {
	if err := run(os.Args[1:], time.Now); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "orderlog: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, builds the entry and appends it to the configured orders file.
// Profit and profit percentage are derived from the prices unless given explicitly.
func run(args []string, now func() time.Time) error {
	fs := flag.NewFlagSet("orderlog", flag.ContinueOnError)
	configDir := fs.String("configs", "./configs", "directory holding config.yml")
	symbol := fs.String("symbol", "", "traded pair, e.g. ETH/USDT")
	buyExchange := fs.String("buy", "", "exchange bought on")
	sellExchange := fs.String("sell", "", "exchange sold on")
	buyPrice := fs.Float64("buy-price", 0, "buy price")
	sellPrice := fs.Float64("sell-price", 0, "sell price")
	profit := fs.Float64("profit", 0, "profit in quote currency (default sell-price - buy-price)")
	profitPct := fs.Float64("profit-pct", 0, "profit percentage (default profit / buy-price * 100)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *symbol == "" || *buyExchange == "" || *sellExchange == "" || *buyPrice <= 0 {
		fs.Usage()
		return errUsage
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		return fmt.Errorf("could not init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	entry := orders.Entry{
		Time:         now(),
		Symbol:       *symbol,
		BuyExchange:  *buyExchange,
		SellExchange: *sellExchange,
		BuyPrice:     *buyPrice,
		SellPrice:    *sellPrice,
	}
	entry.Profit = *sellPrice - *buyPrice
	if set["profit"] {
		entry.Profit = *profit
	}
	entry.ProfitPercentage = entry.Profit / *buyPrice * 100
	if set["profit-pct"] {
		entry.ProfitPercentage = *profitPct
	}

	if err := orders.NewWriter(cfg.Orders.File).Append(entry); err != nil {
		log.Error("Failed to append order", zap.Error(err))
		return err
	}
	log.Info("Order logged", zap.String("file", cfg.Orders.File), zap.Any("record", entry.Record()))
	return nil
}
