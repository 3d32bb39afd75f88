package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// ReportOverdueLeases logs open leases whose end date has passed. The lease
// model has no overdue state, so this job is read-only; follow-up is an
// operator decision.
func (jr *JobRunner) ReportOverdueLeases() {
	jr.runWithRecovery("ReportOverdueLeases", func() {
		ctx := context.Background()

		leases, err := jr.store.Leases().ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue leases", "error", err)
			return
		}

		logger.Info("Overdue lease report", "count", len(leases))
		for _, lease := range leases {
			logger.Warn("Lease past its end date",
				"lease_id", lease.ID,
				"customer_id", lease.CustomerID,
				"vehicle_id", lease.VehicleID,
				"end_date", lease.EndDate.Format("2006-01-02"))
		}
	})
}
