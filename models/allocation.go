package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusMatched = "Matched"
	StatusPartial = "Partial"
	StatusExcess  = "Excess"
	StatusPending = "Pending"
)

// Sentinel broker IDs for orders that matched no execution. UnknownSymbol
// means no execution shared the symbol at all; UnknownDate means the symbol
// matched but the trade date did not.
const (
	BrokerUnknownSymbol = "UNKNOWN_SYMBOL"
	BrokerUnknownDate   = "UNKNOWN_DATE"
)

// AllocationRecord attributes a slice of an order's quantity to one broker
// execution. Records are append-only outputs of a single reconciliation run,
// stamped with that run's RunID.
type AllocationRecord struct {
	RecID             int64           `db:"rec_id" csv:"rec_id"`
	RunID             string          `db:"run_id" csv:"run_id"`
	OrderID           string          `db:"order_id" csv:"order_id"`
	BrokerID          string          `db:"broker_id" csv:"broker_id"`
	Status            string          `db:"status" csv:"status"`
	AllocatedQuantity decimal.Decimal `db:"allocated_quantity" csv:"allocated_quantity"`
	TotalCost         decimal.Decimal `db:"total_cost" csv:"total_cost"`
	ExecutionSlippage decimal.Decimal `db:"execution_slippage" csv:"execution_slippage"`
	STT               decimal.Decimal `db:"stt" csv:"stt"`
	BrokerageAmount   decimal.Decimal `db:"brokerage_amount" csv:"brokerage_amount"`
	CreatedAt         time.Time       `db:"created_at" csv:"-"`
}
