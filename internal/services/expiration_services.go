package services

import (
	"context"
	"log"
	"time"
)

// InactivityTTL is how long an account may go without a successful
// authentication before the sweeper purges it.
const InactivityTTL = 30 * 24 * time.Hour

type ExpiringUserStore interface {
	DeleteInactiveSince(ctx context.Context, cutoff time.Time) (int64, error)
}

// ExpirationService purges accounts that have been inactive past
// InactivityTTL, together with their booleans.
type ExpirationService struct {
	Users ExpiringUserStore
}

func NewExpirationService(u ExpiringUserStore) *ExpirationService {
	return &ExpirationService{Users: u}
}

// SweepOnce deletes every expired account and returns how many were removed.
func (s *ExpirationService) SweepOnce(ctx context.Context, now time.Time) (int64, error) {
	return s.Users.DeleteInactiveSince(ctx, now.Add(-InactivityTTL))
}

// Run sweeps on the given interval until ctx is cancelled. It is safe to run
// against live traffic: a request racing a deletion simply fails to
// authenticate once the account row is gone.
func (s *ExpirationService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			deleted, err := s.SweepOnce(ctx, now)
			if err != nil {
				log.Printf("expiration sweep failed: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("expiration sweep removed %d expired users", deleted)
			}
		}
	}
}
