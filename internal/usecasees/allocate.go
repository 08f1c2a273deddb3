package usecasees

import (
	"errors"
	"fmt"

	"reconciliation/models"

	"github.com/shopspring/decimal"
)

var (
	ErrDegenerateQuantity = errors.New("degenerate execution quantity")
	ErrOrderIncomplete    = errors.New("order missing required fields")
)

// OrderFailure tags a per-order reconciliation failure with its order ID.
// Failed orders never abort the remaining orders of a run.
type OrderFailure struct {
	OrderID string
	Err     error
}

func (f OrderFailure) Error() string {
	return fmt.Sprintf("order %s: %v", f.OrderID, f.Err)
}

func (f OrderFailure) Unwrap() error {
	return f.Err
}

// ReconcileResult is the output of one engine invocation: the allocation
// records of every successfully processed order plus a structured failure
// list for the rest.
type ReconcileResult struct {
	Records  []models.AllocationRecord
	Failures []OrderFailure
}

// Reconcile matches client orders against broker executions and splits each
// order's quantity across its matching executions. It is a pure function:
// given the same snapshots it produces the same record sequence.
func Reconcile(orders []models.Order, executions []models.Execution) ReconcileResult {
	var res ReconcileResult

	for _, order := range orders {
		records, err := allocateOrder(order, executions)
		if err != nil {
			res.Failures = append(res.Failures, OrderFailure{OrderID: order.OrderID, Err: err})

			continue
		}

		res.Records = append(res.Records, records...)
	}

	return res
}

func allocateOrder(order models.Order, executions []models.Execution) ([]models.AllocationRecord, error) {
	if order.OrderID == "" || order.Symbol == "" || order.Quantity <= 0 {
		return nil, ErrOrderIncomplete
	}

	var symbolMatched bool
	var candidates []models.Execution

	for _, ex := range executions {
		if ex.Symbol != order.Symbol {
			continue
		}
		symbolMatched = true

		if ex.TradeDate == order.OrderDate {
			candidates = append(candidates, ex)
		}
	}

	if len(candidates) == 0 {
		brokerID := models.BrokerUnknownDate
		if !symbolMatched {
			brokerID = models.BrokerUnknownSymbol
		}

		return []models.AllocationRecord{pendingRecord(order.OrderID, brokerID)}, nil
	}

	var totalQuantity int64
	weighted := decimal.Zero

	for _, ex := range candidates {
		totalQuantity += ex.Quantity
		weighted = weighted.Add(ex.TradePrice.Mul(decimal.NewFromInt(ex.Quantity)))
	}

	if totalQuantity == 0 {
		return nil, ErrDegenerateQuantity
	}

	totalQty := decimal.NewFromInt(totalQuantity)
	orderQty := decimal.NewFromInt(order.Quantity)

	// One blended reference price per order; slippage does not depend on how
	// many executions end up consumed.
	weightedAvgPrice := weighted.Div(totalQty)
	slippage := order.OrderPrice.Sub(weightedAvgPrice)

	records := make([]models.AllocationRecord, 0, len(candidates))
	totalAllocated := decimal.Zero

	for i, ex := range candidates {
		execQty := decimal.NewFromInt(ex.Quantity)
		remaining := orderQty.Sub(totalAllocated)

		proposed := orderQty.Mul(execQty).Div(totalQty)
		if i == len(candidates)-1 && order.Quantity <= totalQuantity {
			// In exact arithmetic the proportional shares of a coverable
			// order sum to the order quantity, so the last share equals the
			// remainder. Assigning it directly absorbs the fixed-precision
			// division error that would otherwise leave an epsilon
			// under-fill.
			proposed = remaining
		}
		if proposed.GreaterThan(execQty) {
			proposed = execQty
		}
		if proposed.GreaterThan(remaining) {
			proposed = remaining
		}

		status := models.StatusMatched
		if proposed.LessThan(remaining) {
			status = models.StatusPartial
		}
		if execQty.GreaterThan(remaining) {
			status = models.StatusExcess
		}

		records = append(records, models.AllocationRecord{
			OrderID:           order.OrderID,
			BrokerID:          ex.BrokerID,
			Status:            status,
			AllocatedQuantity: proposed,
			TotalCost:         ex.NetAmount.Add(ex.BrokerageAmount).Add(ex.STT),
			ExecutionSlippage: slippage,
			STT:               ex.STT,
			BrokerageAmount:   ex.BrokerageAmount,
		})

		totalAllocated = totalAllocated.Add(proposed)
		if totalAllocated.GreaterThanOrEqual(orderQty) {
			break
		}
	}

	if totalAllocated.LessThan(orderQty) {
		lastBroker := candidates[len(records)-1].BrokerID
		records = append(records, pendingRecord(order.OrderID, lastBroker))
	}

	return records, nil
}

func pendingRecord(orderID, brokerID string) models.AllocationRecord {
	return models.AllocationRecord{
		OrderID:           orderID,
		BrokerID:          brokerID,
		Status:            models.StatusPending,
		AllocatedQuantity: decimal.Zero,
		TotalCost:         decimal.Zero,
		ExecutionSlippage: decimal.Zero,
		STT:               decimal.Zero,
		BrokerageAmount:   decimal.Zero,
	}
}
