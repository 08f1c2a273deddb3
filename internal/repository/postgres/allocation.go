package postgres

import (
	"reconciliation/models"

	"github.com/jmoiron/sqlx"
)

type AllocationRepository struct {
	conn *sqlx.DB
}

func NewAllocationRepository(conn *sqlx.DB) AllocationRepo {
	return &AllocationRepository{
		conn: conn,
	}
}

func (r *AllocationRepository) StoreBatch(runID string, list []models.AllocationRecord) error {
	for i := range list {
		list[i].RunID = runID

		if _, err := r.conn.NamedExec("INSERT INTO reconciliation_results (run_id,order_id,broker_id,status,allocated_quantity,total_cost,execution_slippage,stt,brokerage_amount) VALUES (:run_id,:order_id,:broker_id,:status,:allocated_quantity,:total_cost,:execution_slippage,:stt,:brokerage_amount)", &list[i]); err != nil {
			return err
		}
	}

	return nil
}

func (r *AllocationRepository) GetByStatus(status string) ([]models.AllocationRecord, error) {
	var out []models.AllocationRecord

	if err := r.conn.Select(&out, "SELECT * FROM reconciliation_results WHERE status = $1 ORDER BY rec_id;", status); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *AllocationRepository) GetByStatuses(statuses []string) ([]models.AllocationRecord, error) {
	var out []models.AllocationRecord

	query, args, err := sqlx.In("SELECT * FROM reconciliation_results WHERE status IN (?) ORDER BY rec_id;", statuses)
	if err != nil {
		return nil, err
	}

	if err := r.conn.Select(&out, r.conn.Rebind(query), args...); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *AllocationRepository) BrokerRanking() ([]models.BrokerRanking, error) {
	var out []models.BrokerRanking

	if err := r.conn.Select(&out, `
		SELECT broker_id,
		       AVG(execution_slippage) AS avg_slippage,
		       SUM(total_cost) AS total_cost,
		       COUNT(*) AS trade_count
		FROM reconciliation_results
		GROUP BY broker_id
		ORDER BY avg_slippage ASC, total_cost ASC, broker_id ASC;`); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *AllocationRepository) BrokerSummary() ([]models.BrokerSummary, error) {
	var out []models.BrokerSummary

	if err := r.conn.Select(&out, `
		SELECT broker_id, order_id,
		       COUNT(*) AS trade_count,
		       SUM(allocated_quantity) AS total_quantity,
		       SUM(total_cost) AS total_cost
		FROM reconciliation_results
		GROUP BY broker_id, order_id
		ORDER BY broker_id, order_id;`); err != nil {
		return nil, err
	}

	return out, nil
}
