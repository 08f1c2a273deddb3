package http

import (
	"reconciliation/internal/usecasees"
	"reconciliation/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReconcileUC interface {
	Run() (*usecasees.RunSummary, error)
}

type RatingUC interface {
	Ranking() ([]models.BrokerRanking, error)
}

type Handler struct {
	fiber       *fiber.App
	reconcileUC ReconcileUC
	ratingUC    RatingUC
	logger      *logrus.Logger
}

func NewHandler(f *fiber.App, reconcileUC ReconcileUC, ratingUC RatingUC, l *logrus.Logger) *Handler {
	return &Handler{
		fiber:       f,
		reconcileUC: reconcileUC,
		ratingUC:    ratingUC,
		logger:      l,
	}
}

type failureBody struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

func (h *Handler) TriggerReconciliation(c *fiber.Ctx) error {
	summary, err := h.reconcileUC.Run()
	if err != nil {
		h.logger.WithError(err).Error("trigger reconciliation")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	failures := make([]failureBody, 0, len(summary.Failures))
	for _, f := range summary.Failures {
		failures = append(failures, failureBody{OrderID: f.OrderID, Reason: f.Err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"message":  "Reconciliation and report generation completed.",
		"run_id":   summary.RunID,
		"orders":   summary.Orders,
		"records":  summary.Records,
		"statuses": summary.Statuses,
		"failures": failures,
	})
}

func (h *Handler) BrokerRanking(c *fiber.Ctx) error {
	rankings, err := h.ratingUC.Ranking()
	if err != nil {
		h.logger.WithError(err).Error("broker ranking")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"rankings": rankings,
	})
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}
