package db

import (
	"context"
	"time"

	"github.com/david/rfp-tracker/internal/stats"
)

// GetStatistics computes the dashboard summary from scratch: collection
// counts for the totals, a full (bounded) read for the deadline and
// compliance reductions.
func (s *Store) GetStatistics(ctx context.Context) (*stats.Summary, error) {
	total, err := s.CountOpportunities(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts := make(map[string]int64, len(stats.CanonicalStatuses))
	for _, status := range stats.CanonicalStatuses {
		count, err := s.CountOpportunitiesByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		statusCounts[status] = count
	}

	opportunities, err := s.ListOpportunities(ctx)
	if err != nil {
		return nil, err
	}

	return stats.Summarize(total, statusCounts, opportunities, time.Now().UTC()), nil
}
