package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

// MappingProfile maps normalized spreadsheet headers to canonical execution
// fields. The mapping is an explicit table so a new broker layout is a data
// change, not a code change.
type MappingProfile struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Columns []ColumnRule       `bson:"columns"`
}

type ColumnRule struct {
	Header string `bson:"header"`
	Field  string `bson:"field"`
}

// Canonical execution field names a ColumnRule may target.
const (
	FieldSymbol          = "symbol"
	FieldBrokerID        = "broker_id"
	FieldBuySellFlag     = "buy_sell_flag"
	FieldQuantity        = "quantity"
	FieldTradePrice      = "trade_price"
	FieldTradeDate       = "trade_date"
	FieldNetAmount       = "net_amount"
	FieldBrokerageAmount = "brokerage_amount"
	FieldSTT             = "stt"
	FieldSettlementDate  = "settlement_date"
	FieldExchangeCode    = "exchange_code"
	FieldDepositoryCode  = "depository_code"
)

// FieldFor resolves a normalized header through the mapping table.
func (p *MappingProfile) FieldFor(header string) (string, bool) {
	for _, rule := range p.Columns {
		if rule.Header == header {
			return rule.Field, true
		}
	}

	return "", false
}
