package usecase

import (
	"context"
	"log"

	"github.com/leadpilot/leadpilot/internal/infra/http/middleware"
	"github.com/leadpilot/leadpilot/internal/infra/queue"
)

// notify is the shared best-effort enqueue: a full mail queue must never
// fail the request that triggered the email.
func notify(ctx context.Context, q queue.EmailQueueInterface, job queue.EmailJob) {
	if q == nil {
		return
	}
	if err := q.PublishEmail(ctx, job); err != nil {
		log.Printf("warning: failed to enqueue %s email for %s: %v", job.Template, job.To, err)
		return
	}
	middleware.RecordEmailQueued(job.Template)
}
