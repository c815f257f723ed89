package pipeline

import (
	"fmt"
	"math"
	"sort"
	"time"

	"outreach-stack/internal/models"
)

// Upload consistency buckets by standard deviation of day-gaps.
const (
	ConsistencyVeryConsistent     = "very_consistent"
	ConsistencyConsistent         = "consistent"
	ConsistencySomewhatConsistent = "somewhat_consistent"
	ConsistencyInconsistent       = "inconsistent"
	ConsistencyUnknown            = "unknown"
)

// ContentMetrics summarizes a creator's recent output.
type ContentMetrics struct {
	AvgViewsPerVideo    int64
	AvgLikesPerVideo    int64
	UploadFrequencyDays float64
	UploadConsistency   string
}

// CalculateContentMetrics derives upload cadence and average
// performance from recent content items. Fewer than two items give no
// cadence signal: frequency 0 and consistency "unknown".
func CalculateContentMetrics(items []models.ContentItem) ContentMetrics {
	if len(items) == 0 {
		return ContentMetrics{UploadConsistency: ConsistencyUnknown}
	}

	var totalViews, totalLikes int64
	for _, item := range items {
		totalViews += item.ViewCount
		totalLikes += item.LikeCount
	}
	avgViews := totalViews / int64(len(items))
	avgLikes := totalLikes / int64(len(items))

	if len(items) < 2 {
		return ContentMetrics{
			AvgViewsPerVideo:  avgViews,
			AvgLikesPerVideo:  avgLikes,
			UploadConsistency: ConsistencyUnknown,
		}
	}

	dates := make([]time.Time, len(items))
	for i, item := range items {
		dates[i] = item.PublishedAt
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	gaps := make([]float64, 0, len(dates)-1)
	var gapSum float64
	for i := 0; i < len(dates)-1; i++ {
		// Whole days between consecutive uploads
		gap := float64(int64(dates[i].Sub(dates[i+1]) / (24 * time.Hour)))
		gaps = append(gaps, gap)
		gapSum += gap
	}

	avgFrequency := gapSum / float64(len(gaps))

	var variance float64
	for _, gap := range gaps {
		variance += (gap - avgFrequency) * (gap - avgFrequency)
	}
	variance /= float64(len(gaps))
	stdDev := math.Sqrt(variance)

	var consistency string
	switch {
	case stdDev < 3:
		consistency = ConsistencyVeryConsistent
	case stdDev < 7:
		consistency = ConsistencyConsistent
	case stdDev < 14:
		consistency = ConsistencySomewhatConsistent
	default:
		consistency = ConsistencyInconsistent
	}

	return ContentMetrics{
		AvgViewsPerVideo:    avgViews,
		AvgLikesPerVideo:    avgLikes,
		UploadFrequencyDays: math.Round(avgFrequency*10) / 10,
		UploadConsistency:   consistency,
	}
}

// EngagementRateString formats lifetime engagement (average views per
// video over subscribers) as a percentage, or "N/A" when undefined.
func EngagementRateString(totalViews, subscribers, videoCount int64) string {
	if subscribers == 0 || videoCount == 0 {
		return "N/A"
	}

	avgViews := float64(totalViews) / float64(videoCount)
	engagement := avgViews / float64(subscribers) * 100

	return fmt.Sprintf("%.2f%%", engagement)
}

// EngagementNumeric computes recent engagement (average views per
// recent item over audience size) as a percentage, rounded to two
// decimals. Zero when either input gives no signal.
func EngagementNumeric(avgViewsPerVideo, followers int64) float64 {
	if avgViewsPerVideo <= 0 || followers <= 0 {
		return 0
	}

	engagement := float64(avgViewsPerVideo) / float64(followers) * 100
	return math.Round(engagement*100) / 100
}
