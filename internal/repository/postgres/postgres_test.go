package postgres_test

import (
	"fmt"
	"testing"

	"reconciliation/internal/repository/postgres"
	"reconciliation/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	_ "github.com/lib/pq"
)

type PGTest struct {
	conn *sqlx.DB
}

func initPGTest(t *testing.T) *PGTest {
	var out PGTest

	db, err := sqlx.Connect("postgres", "host=localhost user=reconciliation password=reconciliation dbname=reconciliation sslmode=disable")
	if err != nil {
		t.Skipf("postgres is not available: %v", err)
	}

	if err := postgres.InitSchema(db); err != nil {
		t.Fatal(err)
	}

	out.conn = db

	return &out
}

func Test_OrderStore(t *testing.T) {
	c := initPGTest(t)
	pgStore := postgres.NewOrderRepository(c.conn)

	orderID := uuid.NewString()

	t.Run("Store", func(t *testing.T) {
		err := pgStore.Store(&models.Order{
			OrderID:    orderID,
			ClientID:   "C001",
			Symbol:     "INE738I01010",
			Quantity:   680,
			OrderPrice: decimal.NewFromFloat(3596.65),
			OrderDate:  "2024-06-12",
		})

		assert.NoError(t, err)
	})

	t.Run("GetByID", func(t *testing.T) {
		o, err := pgStore.GetByID(orderID)
		assert.NoError(t, err)

		assert.Equal(t, "INE738I01010", o.Symbol)
		assert.Equal(t, int64(680), o.Quantity)
	})

	t.Run("SetOrderDate", func(t *testing.T) {
		assert.NoError(t, pgStore.SetOrderDate(orderID, "2024-06-13"))

		o, err := pgStore.GetByID(orderID)
		assert.NoError(t, err)
		assert.Equal(t, "2024-06-13", o.OrderDate)
	})

	t.Run("SetQuantity", func(t *testing.T) {
		assert.NoError(t, pgStore.SetQuantity(orderID, 700))

		o, err := pgStore.GetByID(orderID)
		assert.NoError(t, err)
		assert.Equal(t, int64(700), o.Quantity)
	})
}

func Test_AllocationStore(t *testing.T) {
	c := initPGTest(t)
	pgStore := postgres.NewAllocationRepository(c.conn)

	runID := uuid.NewString()

	records := []models.AllocationRecord{
		{
			OrderID:           "ORD_EXACT_738",
			BrokerID:          "BRK1",
			Status:            models.StatusMatched,
			AllocatedQuantity: decimal.NewFromInt(680),
			TotalCost:         decimal.NewFromFloat(2445722.2),
			ExecutionSlippage: decimal.NewFromFloat(-1.35),
			STT:               decimal.NewFromFloat(244.5),
			BrokerageAmount:   decimal.NewFromFloat(122.0),
		},
		{
			OrderID:           "ORD_NO_MATCH",
			BrokerID:          models.BrokerUnknownSymbol,
			Status:            models.StatusPending,
			AllocatedQuantity: decimal.Zero,
			TotalCost:         decimal.Zero,
			ExecutionSlippage: decimal.Zero,
			STT:               decimal.Zero,
			BrokerageAmount:   decimal.Zero,
		},
	}

	assert.NoError(t, pgStore.StoreBatch(runID, records))

	t.Run("GetByStatus", func(t *testing.T) {
		matched, err := pgStore.GetByStatus(models.StatusMatched)
		assert.NoError(t, err)

		var found bool
		for _, rec := range matched {
			if rec.RunID == runID {
				found = true
				assert.True(t, rec.AllocatedQuantity.Equal(decimal.NewFromInt(680)), fmt.Sprintf("allocated %s", rec.AllocatedQuantity))
			}
		}
		assert.True(t, found)
	})

	t.Run("GetByStatuses", func(t *testing.T) {
		unmatched, err := pgStore.GetByStatuses([]string{models.StatusPending, models.StatusPartial, models.StatusExcess})
		assert.NoError(t, err)

		var found bool
		for _, rec := range unmatched {
			if rec.RunID == runID {
				found = true
				assert.Equal(t, models.BrokerUnknownSymbol, rec.BrokerID)
			}
		}
		assert.True(t, found)
	})

	t.Run("BrokerRanking", func(t *testing.T) {
		rankings, err := pgStore.BrokerRanking()
		assert.NoError(t, err)
		assert.NotEmpty(t, rankings)

		for i := 1; i < len(rankings); i++ {
			assert.True(t, rankings[i-1].AvgSlippage.LessThanOrEqual(rankings[i].AvgSlippage))
		}
	})

	t.Run("BrokerSummary", func(t *testing.T) {
		summary, err := pgStore.BrokerSummary()
		assert.NoError(t, err)
		assert.NotEmpty(t, summary)
	})
}

func Test_ExecutionStore(t *testing.T) {
	c := initPGTest(t)
	pgStore := postgres.NewExecutionRepository(c.conn)

	assert.NoError(t, pgStore.StoreBatch([]models.Execution{
		{
			Symbol:          "INE738I01010",
			BrokerID:        "BRK1",
			BuySellFlag:     "B",
			Quantity:        680,
			TradePrice:      decimal.NewFromFloat(3598.0),
			TradeDate:       "2024-06-12",
			NetAmount:       decimal.NewFromFloat(2446640.0),
			BrokerageAmount: decimal.NewFromFloat(122.0),
			STT:             decimal.NewFromFloat(244.5),
			SettlementDate:  "2024-06-14",
		},
	}))

	list, err := pgStore.GetAll()
	assert.NoError(t, err)
	assert.NotEmpty(t, list)

	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}

	assert.NoError(t, pgStore.DeleteAll())

	list, err = pgStore.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, list)
}
