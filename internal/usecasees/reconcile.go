package usecasees

import (
	"fmt"
	"runtime/debug"

	"reconciliation/internal/controllers"
	mongoRepo "reconciliation/internal/repository/mongo"
	"reconciliation/internal/repository/postgres"
	"reconciliation/internal/usecasees/structs"
	"reconciliation/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type reconcileUseCase struct {
	mailboxCtrl controllers.MailboxCtrl
	tgmCtrl     controllers.TgmCtrl

	orderRepo      postgres.OrderRepo
	executionRepo  postgres.ExecutionRepo
	allocationRepo postgres.AllocationRepo
	mappingRepo    mongoRepo.MappingRepo

	reportsDir string

	metrics map[structs.MetricConst]prometheus.Counter
	logger  *logrus.Logger
}

func NewReconcileUseCase(
	mailboxCtrl controllers.MailboxCtrl,
	tgmCtrl controllers.TgmCtrl,
	orderRepo postgres.OrderRepo,
	executionRepo postgres.ExecutionRepo,
	allocationRepo postgres.AllocationRepo,
	mappingRepo mongoRepo.MappingRepo,
	reportsDir string,
	metrics map[structs.MetricConst]prometheus.Counter,
	logger *logrus.Logger,
) *reconcileUseCase {
	return &reconcileUseCase{
		mailboxCtrl:    mailboxCtrl,
		tgmCtrl:        tgmCtrl,
		orderRepo:      orderRepo,
		executionRepo:  executionRepo,
		allocationRepo: allocationRepo,
		mappingRepo:    mappingRepo,
		reportsDir:     reportsDir,
		metrics:        metrics,
		logger:         logger,
	}
}

// RunSummary describes one completed reconciliation run.
type RunSummary struct {
	RunID    string
	Orders   int
	Records  int
	Statuses map[string]int
	Failures []OrderFailure
}

// Run executes the full pipeline: ingest broker emails, persist executions,
// reconcile against client orders, persist allocation records under a fresh
// run ID, regenerate the CSV reports and announce the outcome.
func (u *reconcileUseCase) Run() (*RunSummary, error) {
	summary, err := u.run()
	if err != nil {
		u.bump(structs.MetricRunFailed)

		return nil, err
	}

	u.bump(structs.MetricRunComplete)

	return summary, nil
}

func (u *reconcileUseCase) run() (*RunSummary, error) {
	profile, err := u.mappingRepo.Load(mongoRepo.DefaultProfile)
	if err != nil {
		return nil, err
	}

	ingested, err := u.mailboxCtrl.Extract(profile)
	if err != nil {
		return nil, err
	}

	if len(ingested) > 0 {
		if err := u.executionRepo.StoreBatch(ingested); err != nil {
			return nil, err
		}

		u.bumpBy(structs.MetricExecutionsIngested, len(ingested))
	}

	orders, err := u.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	executions, err := u.executionRepo.GetAll()
	if err != nil {
		return nil, err
	}

	result := Reconcile(orders, executions)

	runID := uuid.NewString()

	if err := u.allocationRepo.StoreBatch(runID, result.Records); err != nil {
		return nil, err
	}

	statuses := make(map[string]int)
	for _, rec := range result.Records {
		statuses[rec.Status]++
		u.bump(statusMetric(rec.Status))
	}

	for _, failure := range result.Failures {
		u.logger.
			WithError(failure.Err).
			Errorf("reconcile: order %s failed", failure.OrderID)
	}

	if err := u.generateReports(); err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
	}

	summary := &RunSummary{
		RunID:    runID,
		Orders:   len(orders),
		Records:  len(result.Records),
		Statuses: statuses,
		Failures: result.Failures,
	}

	if err := u.tgmCtrl.Send(summary.text()); err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
	}

	u.logger.Infof("reconcile: run %s produced %d records for %d orders (%d failures)",
		runID, summary.Records, summary.Orders, len(summary.Failures))

	return summary, nil
}

func (s *RunSummary) text() string {
	msg := fmt.Sprintf(
		"[ Reconciliation ]\n"+
			"Run:\t%s\n"+
			"Orders:\t%d\n"+
			"Records:\t%d\n"+
			"Failed orders:\t%d\n",
		s.RunID,
		s.Orders,
		s.Records,
		len(s.Failures),
	)

	for _, status := range []string{models.StatusMatched, models.StatusPartial, models.StatusExcess, models.StatusPending} {
		msg += fmt.Sprintf("%s:\t%d\n", status, s.Statuses[status])
	}

	return msg
}

func statusMetric(status string) structs.MetricConst {
	switch status {
	case models.StatusMatched:
		return structs.MetricRecordMatched
	case models.StatusPartial:
		return structs.MetricRecordPartial
	case models.StatusExcess:
		return structs.MetricRecordExcess
	}

	return structs.MetricRecordPending
}

func (u *reconcileUseCase) bump(metric structs.MetricConst) {
	if counter, ok := u.metrics[metric]; ok {
		counter.Inc()
	}
}

func (u *reconcileUseCase) bumpBy(metric structs.MetricConst, n int) {
	if counter, ok := u.metrics[metric]; ok {
		counter.Add(float64(n))
	}
}
