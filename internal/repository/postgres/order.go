package postgres

import (
	"reconciliation/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) OrderRepo {
	return &OrderRepository{
		conn: conn,
	}
}

func (r *OrderRepository) Store(m *models.Order) error {
	if _, err := r.conn.NamedExec("INSERT INTO client_orders (order_id,client_id,symbol,quantity,order_price,order_date) VALUES (:order_id,:client_id,:symbol,:quantity,:order_price,:order_date)", m); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order

	if err := r.conn.Select(&orders, "SELECT * FROM client_orders ORDER BY order_id;"); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) GetByID(orderID string) (*models.Order, error) {
	var order models.Order

	if err := r.conn.QueryRowx("SELECT * FROM client_orders WHERE order_id = $1 LIMIT 1", orderID).StructScan(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *OrderRepository) SetOrderDate(orderID, orderDate string) error {
	if _, err := r.conn.Exec("UPDATE client_orders SET order_date = $1 where order_id = $2;", orderDate, orderID); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) SetQuantity(orderID string, quantity int64) error {
	if _, err := r.conn.Exec("UPDATE client_orders SET quantity = $1 where order_id = $2;", quantity, orderID); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) SetOrderPrice(orderID string, price decimal.Decimal) error {
	if _, err := r.conn.Exec("UPDATE client_orders SET order_price = $1 where order_id = $2;", price, orderID); err != nil {
		return err
	}

	return nil
}
