package usecase

import (
	"context"
	"time"
)

// PurgeExpired removes ledger rows past the retention window. Deletes run in
// bounded batches until a batch comes back short.
func (uc *implUseCase) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -uc.config.RetentionDays)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		deleted, err := uc.repo.PurgeViewEventsBefore(ctx, cutoff, uc.config.PurgeBatchSize)
		if err != nil {
			uc.l.Errorf(ctx, "engagement.usecase.PurgeExpired: Failed to purge batch: %v", err)
			return total, err
		}

		total += deleted
		if deleted < int64(uc.config.PurgeBatchSize) {
			break
		}
	}

	if total > 0 {
		uc.l.Infof(ctx, "engagement.usecase.PurgeExpired: Purged %d view events older than %s", total, cutoff.Format(time.RFC3339))
	}

	return total, nil
}
