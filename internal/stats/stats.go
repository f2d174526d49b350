// Package stats computes the dashboard summary over opportunity records.
// Everything here is a pure reduction over an in-memory slice; nothing is
// cached or persisted.
package stats

import (
	"math"
	"time"

	"github.com/david/rfp-tracker/internal/models"
)

// CanonicalStatuses are the six conventional pipeline statuses. Records with
// a status outside this set count toward the total but land in no bucket.
var CanonicalStatuses = []string{"Drafting", "Review", "Approved", "Submitted", "Won", "Lost"}

// urgentWindow is how far ahead a submission deadline counts as urgent.
// Deadlines already in the past are urgent too.
const urgentWindow = 48 * time.Hour

// settledStatuses are excluded from the urgency check: once an opportunity
// is out the door, its deadline no longer matters.
var settledStatuses = map[string]bool{
	"Won":       true,
	"Lost":      true,
	"Submitted": true,
}

// Summary is the statistics response object, computed fresh per call.
type Summary struct {
	TotalOpportunities int64            `json:"total_opportunities"`
	StatusCounts       map[string]int64 `json:"status_counts"`
	WinRate            float64          `json:"win_rate"`
	UrgentDeadlines    int              `json:"urgent_deadlines"`
	AverageCompliance  float64          `json:"average_compliance"`
}

// Summarize assembles the summary from the collection total, the per-status
// counts, and the fetched opportunity records. now is injected so tests can
// pin the urgency window.
func Summarize(total int64, statusCounts map[string]int64, opportunities []models.Opportunity, now time.Time) *Summary {
	counts := make(map[string]int64, len(CanonicalStatuses))
	for _, status := range CanonicalStatuses {
		counts[status] = statusCounts[status]
	}

	return &Summary{
		TotalOpportunities: total,
		StatusCounts:       counts,
		WinRate:            WinRate(counts["Won"], counts["Lost"]),
		UrgentDeadlines:    UrgentDeadlines(opportunities, now),
		AverageCompliance:  AverageCompliance(opportunities),
	}
}

// WinRate is won/(won+lost) as a percentage rounded to one decimal place.
// Zero when no opportunity has been decided yet.
func WinRate(won, lost int64) float64 {
	decided := won + lost
	if decided == 0 {
		return 0
	}
	return round1(float64(won) / float64(decided) * 100)
}

// UrgentDeadlines counts open opportunities whose submission deadline falls
// at or before now+48h. Unparseable deadlines are never urgent.
func UrgentDeadlines(opportunities []models.Opportunity, now time.Time) int {
	cutoff := now.Add(urgentWindow)
	count := 0
	for _, o := range opportunities {
		if settledStatuses[o.Status] {
			continue
		}
		deadline, err := parseDeadline(o.SubmissionDeadline)
		if err != nil {
			continue
		}
		if !deadline.After(cutoff) {
			count++
		}
	}
	return count
}

// AverageCompliance is the mean compliance percentage rounded to one decimal
// place, zero when there are no records.
func AverageCompliance(opportunities []models.Opportunity) float64 {
	if len(opportunities) == 0 {
		return 0
	}
	sum := 0
	for _, o := range opportunities {
		sum += o.CompliancePercentage
	}
	return round1(float64(sum) / float64(len(opportunities)))
}

// parseDeadline accepts ISO-8601 timestamps with a zone offset or trailing
// Z, falling back to zone-less timestamps interpreted as UTC.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
