package models

import "github.com/shopspring/decimal"

// BrokerRanking is the execution-quality view over allocation records,
// ordered ascending by mean slippage then total cost.
type BrokerRanking struct {
	BrokerID    string          `db:"broker_id" json:"broker_id"`
	AvgSlippage decimal.Decimal `db:"avg_slippage" json:"avg_slippage"`
	TotalCost   decimal.Decimal `db:"total_cost" json:"total_cost"`
	TradeCount  int64           `db:"trade_count" json:"trade_count"`
}

// BrokerSummary is one row of the broker_summary.csv report.
type BrokerSummary struct {
	BrokerID      string          `db:"broker_id" csv:"broker_id"`
	OrderID       string          `db:"order_id" csv:"order_id"`
	TradeCount    int64           `db:"trade_count" csv:"trade_count"`
	TotalQuantity decimal.Decimal `db:"total_quantity" csv:"total_quantity"`
	TotalCost     decimal.Decimal `db:"total_cost" csv:"total_cost"`
}
