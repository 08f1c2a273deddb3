package usecasees

import (
	"sort"

	"reconciliation/internal/repository/postgres"
	"reconciliation/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ratingUseCase struct {
	allocationRepo postgres.AllocationRepo
	logger         *logrus.Logger
}

func NewRatingUseCase(
	allocationRepo postgres.AllocationRepo,
	logger *logrus.Logger,
) *ratingUseCase {
	return &ratingUseCase{
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// Ranking serves the broker-quality view from persisted records. It can be
// recomputed at any time; nothing is mutated.
func (u *ratingUseCase) Ranking() ([]models.BrokerRanking, error) {
	return u.allocationRepo.BrokerRanking()
}

// RankBrokers aggregates allocation records by broker: mean slippage, summed
// cost, record count, ordered ascending by mean slippage then total cost
// (broker ID as a stable final tiebreak).
func RankBrokers(records []models.AllocationRecord) []models.BrokerRanking {
	type agg struct {
		slippage decimal.Decimal
		cost     decimal.Decimal
		count    int64
	}

	byBroker := make(map[string]*agg)
	var brokerIDs []string

	for _, rec := range records {
		a, ok := byBroker[rec.BrokerID]
		if !ok {
			a = &agg{slippage: decimal.Zero, cost: decimal.Zero}
			byBroker[rec.BrokerID] = a
			brokerIDs = append(brokerIDs, rec.BrokerID)
		}

		a.slippage = a.slippage.Add(rec.ExecutionSlippage)
		a.cost = a.cost.Add(rec.TotalCost)
		a.count++
	}

	out := make([]models.BrokerRanking, 0, len(brokerIDs))
	for _, id := range brokerIDs {
		a := byBroker[id]

		out = append(out, models.BrokerRanking{
			BrokerID:    id,
			AvgSlippage: a.slippage.Div(decimal.NewFromInt(a.count)),
			TotalCost:   a.cost,
			TradeCount:  a.count,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].AvgSlippage.Cmp(out[j].AvgSlippage); c != 0 {
			return c < 0
		}
		if c := out[i].TotalCost.Cmp(out[j].TotalCost); c != 0 {
			return c < 0
		}

		return out[i].BrokerID < out[j].BrokerID
	})

	return out
}
