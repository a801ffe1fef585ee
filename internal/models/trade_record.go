package models

// FieldCount is the fixed arity of a data line in orders.csv.
const FieldCount = 8

// Header is the first line the trade logger writes to a new orders.csv.
var Header = []string{
	"datetime", "symbol", "buy_exchange", "sell_exchange",
	"buy_price", "sell_price", "profit", "profit_%",
}

// TradeRecord is one arbitrage trade as read from orders.csv.
// All values are kept as display text; nothing is parsed or converted.
type TradeRecord struct {
	Timestamp        string `json:"timestamp"`
	Token            string `json:"token"`
	BuyExchange      string `json:"buy_exchange"`
	SellExchange     string `json:"sell_exchange"`
	BuyPrice         string `json:"buy_price"`
	SellPrice        string `json:"sell_price"`
	Profit           string `json:"profit"`
	ProfitPercentage string `json:"profit_percentage"`
}

// NewTradeRecord builds a record from positional fields.
// Missing trailing fields are left empty and fields past FieldCount are ignored.
func NewTradeRecord(fields []string) TradeRecord {
	var f [FieldCount]string
	copy(f[:], fields)

	return TradeRecord{
		Timestamp:        f[0],
		Token:            f[1],
		BuyExchange:      f[2],
		SellExchange:     f[3],
		BuyPrice:         f[4],
		SellPrice:        f[5],
		Profit:           f[6],
		ProfitPercentage: f[7],
	}
}

// Fields returns the record values in file order.
func (r TradeRecord) Fields() []string {
	return []string{
		r.Timestamp, r.Token, r.BuyExchange, r.SellExchange,
		r.BuyPrice, r.SellPrice, r.Profit, r.ProfitPercentage,
	}
}
