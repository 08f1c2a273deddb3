package usecasees

import (
	"testing"

	"reconciliation/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rankRecord(broker string, slippage, cost float64) models.AllocationRecord {
	return models.AllocationRecord{
		OrderID:           "ORD1",
		BrokerID:          broker,
		Status:            models.StatusMatched,
		AllocatedQuantity: decimal.NewFromInt(10),
		TotalCost:         decimal.NewFromFloat(cost),
		ExecutionSlippage: decimal.NewFromFloat(slippage),
	}
}

func Test_RankBrokers(t *testing.T) {
	records := []models.AllocationRecord{
		rankRecord("BRK_SLOW", 2.0, 100),
		rankRecord("BRK_SLOW", 4.0, 100),
		rankRecord("BRK_FAST", 0.5, 500),
		rankRecord("BRK_FAST", 1.5, 500),
		rankRecord("BRK_MID", 2.0, 150),
	}

	out := RankBrokers(records)
	assert.Len(t, out, 3)

	// BRK_FAST avg 1.0; BRK_MID avg 2.0 / cost 150; BRK_SLOW avg 3.0
	assert.Equal(t, "BRK_FAST", out[0].BrokerID)
	assert.Equal(t, "BRK_MID", out[1].BrokerID)
	assert.Equal(t, "BRK_SLOW", out[2].BrokerID)

	assert.True(t, out[0].AvgSlippage.Equal(decimal.NewFromInt(1)))
	assert.True(t, out[0].TotalCost.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, int64(2), out[0].TradeCount)
}

func Test_RankBrokers_CostTiebreak(t *testing.T) {
	records := []models.AllocationRecord{
		rankRecord("BRK_EXPENSIVE", 1.0, 900),
		rankRecord("BRK_CHEAP", 1.0, 200),
	}

	out := RankBrokers(records)
	assert.Len(t, out, 2)
	assert.Equal(t, "BRK_CHEAP", out[0].BrokerID)
	assert.Equal(t, "BRK_EXPENSIVE", out[1].BrokerID)
}

func Test_RankBrokers_Empty(t *testing.T) {
	assert.Empty(t, RankBrokers(nil))
}
