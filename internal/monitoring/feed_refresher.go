package monitoring

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/feeds"
)

// FeedRefresher periodically re-fetches the Facebook and YouTube feeds so
// public requests are served from a warm cache.
type FeedRefresher struct {
	feedSvc  *feeds.Service
	schedule cron.Schedule
	done     chan bool
}

// NewFeedRefresher creates a refresher from a standard cron expression.
func NewFeedRefresher(feedSvc *feeds.Service, cronExpr string) (*FeedRefresher, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &FeedRefresher{
		feedSvc:  feedSvc,
		schedule: schedule,
		done:     make(chan bool),
	}, nil
}

// Run starts the refresh loop. It refreshes once immediately, then sleeps
// until each next cron firing.
func (fr *FeedRefresher) Run() {
	log.Info().Msg("Starting background feed refresher...")

	fr.refresh()

	for {
		next := fr.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-fr.done:
			timer.Stop()
			log.Info().Msg("Stopping background feed refresher.")
			return
		case <-timer.C:
			fr.refresh()
		}
	}
}

// Stop halts the refresher.
func (fr *FeedRefresher) Stop() {
	fr.done <- true
}

func (fr *FeedRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	fr.feedSvc.Refresh(ctx)
}
