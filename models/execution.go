package models

import "github.com/shopspring/decimal"

// Execution is a broker-reported fill ingested from a spreadsheet attachment.
// ExchangeCode and DepositoryCode are passthrough fields, never used by
// matching.
type Execution struct {
	ID              int64           `db:"id"`
	Symbol          string          `db:"symbol"`
	BrokerID        string          `db:"broker_id"`
	BuySellFlag     string          `db:"buy_sell_flag"`
	Quantity        int64           `db:"quantity"`
	TradePrice      decimal.Decimal `db:"trade_price"`
	TradeDate       string          `db:"trade_date"`
	NetAmount       decimal.Decimal `db:"net_amount"`
	BrokerageAmount decimal.Decimal `db:"brokerage_amount"`
	STT             decimal.Decimal `db:"stt"`
	SettlementDate  string          `db:"settlement_date"`
	ExchangeCode    string          `db:"exchange_code"`
	DepositoryCode  string          `db:"depository_code"`
}
