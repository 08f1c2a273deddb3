package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(f *fiber.App, reconcileUC ReconcileUC, ratingUC RatingUC, l *logrus.Logger) {
	h := NewHandler(f, reconcileUC, ratingUC, l)

	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)
	router.Post("/reconciliation/trigger", h.TriggerReconciliation)
	router.Get("/brokers/ranking", h.BrokerRanking)
}
