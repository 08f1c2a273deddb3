package postgres

import (
	"reconciliation/models"

	"github.com/shopspring/decimal"
)

//go:generate mockery --case=snake --name=OrderRepo
//go:generate mockery --case=snake --name=ExecutionRepo
//go:generate mockery --case=snake --name=AllocationRepo

type OrderRepo interface {
	Store(m *models.Order) error
	GetAll() ([]models.Order, error)
	GetByID(orderID string) (*models.Order, error)
	SetOrderDate(orderID, orderDate string) error
	SetQuantity(orderID string, quantity int64) error
	SetOrderPrice(orderID string, price decimal.Decimal) error
}

type ExecutionRepo interface {
	StoreBatch(list []models.Execution) error
	GetAll() ([]models.Execution, error)
	DeleteAll() error
}

type AllocationRepo interface {
	StoreBatch(runID string, list []models.AllocationRecord) error
	GetByStatus(status string) ([]models.AllocationRecord, error)
	GetByStatuses(statuses []string) ([]models.AllocationRecord, error)
	BrokerRanking() ([]models.BrokerRanking, error)
	BrokerSummary() ([]models.BrokerSummary, error)
}
