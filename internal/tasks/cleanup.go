package tasks

import (
	"context"
	"log"

	"campusq/internal/queue"

	"github.com/robfig/cron/v3"
)

// SweepExpiredQueues runs one expiry sweep and logs the result. The same
// operation backs the POST /api/cleanup endpoint, so expiration works
// both on demand and on the schedule below.
func SweepExpiredQueues(svc *queue.Service) {
	deleted, err := svc.SweepExpired(context.Background())
	if err != nil {
		log.Println("expiry sweep failed:", err)
		return
	}
	if deleted > 0 {
		log.Printf("expiry sweep removed %d queue(s)", deleted)
	}
}

// InitScheduler starts the cron scheduler with the expiry sweep every
// ten minutes.
func InitScheduler(svc *queue.Service) *cron.Cron {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 */10 * * * *", func() { SweepExpiredQueues(svc) })
	if err != nil {
		log.Println("failed to schedule expiry sweep:", err)
	}

	c.Start()
	log.Println("cron scheduler started")
	return c
}
