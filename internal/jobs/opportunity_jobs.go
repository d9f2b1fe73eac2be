package jobs

import (
	"context"
	"time"

	"volunteerhub-backend/internal/logger"
)

// MarkStartedOpportunities moves upcoming opportunities whose first slot
// date has arrived into the started status
func (jr *JobRunner) MarkStartedOpportunities() {
	jr.runWithRecovery("MarkStartedOpportunities", func() {
		ctx := context.Background()

		count, err := jr.store.OpportunityRepository.MarkStarted(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to mark started opportunities", "error", err)
			return
		}
		logger.Info("Marked opportunities as started", "count", count)
	})
}

// MarkEndedOpportunities moves started opportunities with no remaining
// slots into the ended status
func (jr *JobRunner) MarkEndedOpportunities() {
	jr.runWithRecovery("MarkEndedOpportunities", func() {
		ctx := context.Background()

		count, err := jr.store.OpportunityRepository.MarkEnded(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to mark ended opportunities", "error", err)
			return
		}
		logger.Info("Marked opportunities as ended", "count", count)
	})
}
