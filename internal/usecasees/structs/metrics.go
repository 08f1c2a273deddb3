package structs

type MetricConst int

const (
	MetricRunComplete MetricConst = iota
	MetricRunFailed
	MetricExecutionsIngested
	MetricRecordMatched
	MetricRecordPartial
	MetricRecordExcess
	MetricRecordPending
)

func (m MetricConst) ToString() string {
	switch m {
	case MetricRunComplete:
		return "reconciliation_runs_complete_total"
	case MetricRunFailed:
		return "reconciliation_runs_failed_total"
	case MetricExecutionsIngested:
		return "reconciliation_executions_ingested_total"
	case MetricRecordMatched:
		return "reconciliation_records_matched_total"
	case MetricRecordPartial:
		return "reconciliation_records_partial_total"
	case MetricRecordExcess:
		return "reconciliation_records_excess_total"
	case MetricRecordPending:
		return "reconciliation_records_pending_total"
	}

	return "reconciliation_unknown"
}
