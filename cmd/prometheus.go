package main

import (
	"reconciliation/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Reconciliation map[structs.MetricConst]prometheus.Counter
}

func (a *App) InitMetrics() {
	metrics := Metrics{Reconciliation: map[structs.MetricConst]prometheus.Counter{}}

	for _, metric := range []structs.MetricConst{
		structs.MetricRunComplete,
		structs.MetricRunFailed,
		structs.MetricExecutionsIngested,
		structs.MetricRecordMatched,
		structs.MetricRecordPartial,
		structs.MetricRecordExcess,
		structs.MetricRecordPending,
	} {
		metrics.Reconciliation[metric] = promauto.NewCounter(prometheus.CounterOpts{
			Name: metric.ToString(),
			Help: metric.ToString(),
		})
	}

	a.Metrics = &metrics
}
