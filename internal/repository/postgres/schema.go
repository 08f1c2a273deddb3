package postgres

import "github.com/jmoiron/sqlx"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS client_orders (
		order_id    TEXT PRIMARY KEY,
		client_id   TEXT NOT NULL DEFAULT '',
		symbol      TEXT NOT NULL,
		quantity    BIGINT NOT NULL,
		order_price NUMERIC NOT NULL DEFAULT 0,
		order_date  TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS broker_trades (
		id               BIGSERIAL PRIMARY KEY,
		symbol           TEXT NOT NULL,
		broker_id        TEXT NOT NULL,
		buy_sell_flag    TEXT NOT NULL DEFAULT '',
		quantity         BIGINT NOT NULL,
		trade_price      NUMERIC NOT NULL DEFAULT 0,
		trade_date       TEXT NOT NULL,
		net_amount       NUMERIC NOT NULL DEFAULT 0,
		brokerage_amount NUMERIC NOT NULL DEFAULT 0,
		stt              NUMERIC NOT NULL DEFAULT 0,
		settlement_date  TEXT NOT NULL DEFAULT '',
		exchange_code    TEXT NOT NULL DEFAULT '',
		depository_code  TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS reconciliation_results (
		rec_id             BIGSERIAL PRIMARY KEY,
		run_id             TEXT NOT NULL,
		order_id           TEXT NOT NULL,
		broker_id          TEXT NOT NULL,
		status             TEXT NOT NULL,
		allocated_quantity NUMERIC NOT NULL DEFAULT 0,
		total_cost         NUMERIC NOT NULL DEFAULT 0,
		execution_slippage NUMERIC NOT NULL DEFAULT 0,
		stt                NUMERIC NOT NULL DEFAULT 0,
		brokerage_amount   NUMERIC NOT NULL DEFAULT 0,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
}

// InitSchema creates the three reconciliation tables when missing.
func InitSchema(conn *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
