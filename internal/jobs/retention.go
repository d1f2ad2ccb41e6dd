package jobs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// runRetentionCleanup purges high-churn log rows older than the retention
// window. Only water logs and routine checks are purged; expenses, journal
// entries and contacts are kept forever.
func (s *Scheduler) runRetentionCleanup(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	cutoffDate := cutoff.Format("2006-01-02")

	result, err := s.db.ExecContext(ctx, `DELETE FROM water_logs WHERE logged_at < ?`, cutoff)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"job":   "retention_cleanup",
			"table": "water_logs",
			"error": err.Error(),
		}).Warn("retention cleanup failed")
	} else {
		n, _ := result.RowsAffected()
		s.logger.WithFields(logrus.Fields{
			"job":     "retention_cleanup",
			"table":   "water_logs",
			"deleted": n,
		}).Info("retention cleanup done")
	}

	result, err = s.db.ExecContext(ctx, `DELETE FROM routine_checks WHERE done_on < ?`, cutoffDate)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"job":   "retention_cleanup",
			"table": "routine_checks",
			"error": err.Error(),
		}).Warn("retention cleanup failed")
	} else {
		n, _ := result.RowsAffected()
		s.logger.WithFields(logrus.Fields{
			"job":     "retention_cleanup",
			"table":   "routine_checks",
			"deleted": n,
		}).Info("retention cleanup done")
	}
}
