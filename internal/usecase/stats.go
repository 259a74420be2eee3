package usecase

import "github.com/menucraft/backend/internal/domain"

// CategoryStats summarizes one category of the working set for the
// review step: how many items landed in it and how confident the
// extraction was on average.
type CategoryStats struct {
	Category          string  `json:"category"`
	ItemCount         int     `json:"itemCount"`
	AverageConfidence float64 `json:"averageConfidence"`
}

// ComputeStats derives per-category statistics from the working set.
// Categories follow the grouped-view ordering so the stats table and
// the editor list read in the same order.
func ComputeStats(items []domain.CandidateItem) []CategoryStats {
	groups := GroupWorkingSet(items, TypeFilterAll)

	stats := make([]CategoryStats, len(groups))
	for i, group := range groups {
		total := 0
		for _, it := range group.Items {
			total += it.Item.Confidence
		}
		stats[i] = CategoryStats{
			Category:          group.Name,
			ItemCount:         len(group.Items),
			AverageConfidence: float64(total) / float64(len(group.Items)),
		}
	}
	return stats
}
