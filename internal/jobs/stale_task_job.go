package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StaleTaskJob watches for open tasks that have been sitting past a
// threshold. It only reports; closing or reassigning a stuck task stays a
// human decision made through the normal entry points.
type StaleTaskJob struct {
	db        *gorm.DB
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleTaskJob creates a watchdog for open tasks older than threshold.
// Runs every minute.
func NewStaleTaskJob(db *gorm.DB, threshold time.Duration, logger *slog.Logger) *StaleTaskJob {
	return &StaleTaskJob{
		db:        db,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_task_job"),
	}
}

// Start begins the stale task watchdog.
func (j *StaleTaskJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.scan(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale task job started (running every minute)", "threshold", j.threshold.String())
	return nil
}

// Stop stops the stale task watchdog.
func (j *StaleTaskJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale task job stopped")
}

func (j *StaleTaskJob) scan(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.threshold)

	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT id, order_id, kind, agent_id, assigned_at
		FROM tasks
		WHERE completed_at IS NULL AND assigned_at < ?
		ORDER BY assigned_at
	`, cutoff).Rows()
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale task scan failed", "error", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID, agentID string
		var kind int
		var assignedAt time.Time

		if err = rows.Scan(&id, &orderID, &kind, &agentID, &assignedAt); err != nil {
			j.logger.ErrorContext(ctx, "Stale task scan failed", "error", err)
			return
		}

		j.logger.WarnContext(ctx, "Open task exceeded threshold",
			"task_id", id,
			"order_id", orderID,
			"kind", kind,
			"agent_id", agentID,
			"open_for", time.Since(assignedAt).Round(time.Second).String(),
		)
	}

	if err = rows.Err(); err != nil {
		j.logger.ErrorContext(ctx, "Stale task scan failed", "error", err)
	}
}
