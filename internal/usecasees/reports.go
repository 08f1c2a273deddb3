package usecasees

import (
	"os"
	"path/filepath"

	"reconciliation/models"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

const (
	reportMatched   = "matched_trades.csv"
	reportUnmatched = "unmatched_trades.csv"
	reportSummary   = "broker_summary.csv"
)

// generateReports rewrites the three CSV reports from persisted records:
// matched trades, unmatched trades (Pending/Partial/Excess) and the
// per-broker/per-order summary.
func (u *reconcileUseCase) generateReports() error {
	if err := os.MkdirAll(u.reportsDir, 0o755); err != nil {
		return err
	}

	matched, err := u.allocationRepo.GetByStatus(models.StatusMatched)
	if err != nil {
		return err
	}

	if err := u.writeReport(reportMatched, &matched); err != nil {
		return err
	}

	unmatched, err := u.allocationRepo.GetByStatuses([]string{
		models.StatusPending,
		models.StatusPartial,
		models.StatusExcess,
	})
	if err != nil {
		return err
	}

	if err := u.writeReport(reportUnmatched, &unmatched); err != nil {
		return err
	}

	summary, err := u.allocationRepo.BrokerSummary()
	if err != nil {
		return err
	}

	if err := u.writeReport(reportSummary, &summary); err != nil {
		return err
	}

	u.logger.Infof("reports: regenerated under %s", u.reportsDir)

	return nil
}

func (u *reconcileUseCase) writeReport(name string, records interface{}) error {
	f, err := os.Create(filepath.Join(u.reportsDir, name))
	if err != nil {
		return err
	}

	defer func() {
		_ = f.Close()
	}()

	if err := gocsv.MarshalFile(records, f); err != nil {
		return errors.Wrap(err, name)
	}

	return nil
}
