package postgres

import (
	"reconciliation/models"

	"github.com/jmoiron/sqlx"
)

type ExecutionRepository struct {
	conn *sqlx.DB
}

func NewExecutionRepository(conn *sqlx.DB) ExecutionRepo {
	return &ExecutionRepository{
		conn: conn,
	}
}

func (r *ExecutionRepository) StoreBatch(list []models.Execution) error {
	for i := range list {
		if _, err := r.conn.NamedExec("INSERT INTO broker_trades (symbol,broker_id,buy_sell_flag,quantity,trade_price,trade_date,net_amount,brokerage_amount,stt,settlement_date,exchange_code,depository_code) VALUES (:symbol,:broker_id,:buy_sell_flag,:quantity,:trade_price,:trade_date,:net_amount,:brokerage_amount,:stt,:settlement_date,:exchange_code,:depository_code)", &list[i]); err != nil {
			return err
		}
	}

	return nil
}

// GetAll returns executions ordered by insertion id so allocation processes
// candidates in a stable, reproducible order.
func (r *ExecutionRepository) GetAll() ([]models.Execution, error) {
	var out []models.Execution

	if err := r.conn.Select(&out, "SELECT * FROM broker_trades ORDER BY id;"); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ExecutionRepository) DeleteAll() error {
	if _, err := r.conn.Exec("DELETE FROM broker_trades;"); err != nil {
		return err
	}

	return nil
}
