package pipeline

import (
	"testing"
	"time"

	"outreach-stack/internal/models"
)

func itemAt(daysAgo int, views, likes int64) models.ContentItem {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return models.ContentItem{
		PublishedAt: base.AddDate(0, 0, -daysAgo),
		ViewCount:   views,
		LikeCount:   likes,
	}
}

func TestCalculateContentMetrics(t *testing.T) {
	tests := []struct {
		name            string
		items           []models.ContentItem
		wantAvgViews    int64
		wantAvgLikes    int64
		wantFrequency   float64
		wantConsistency string
	}{
		{
			name:            "Empty input",
			items:           nil,
			wantAvgViews:    0,
			wantAvgLikes:    0,
			wantFrequency:   0,
			wantConsistency: ConsistencyUnknown,
		},
		{
			name:            "Single item gives no cadence",
			items:           []models.ContentItem{itemAt(0, 1000, 50)},
			wantAvgViews:    1000,
			wantAvgLikes:    50,
			wantFrequency:   0,
			wantConsistency: ConsistencyUnknown,
		},
		{
			name: "Perfectly regular three-day cadence",
			items: []models.ContentItem{
				itemAt(0, 900, 30), itemAt(3, 1100, 40), itemAt(6, 1000, 50),
			},
			wantAvgViews:    1000,
			wantAvgLikes:    40,
			wantFrequency:   3.0,
			wantConsistency: ConsistencyVeryConsistent,
		},
		{
			name: "Unordered input is sorted first",
			items: []models.ContentItem{
				itemAt(6, 1000, 0), itemAt(0, 1000, 0), itemAt(3, 1000, 0),
			},
			wantAvgViews:    1000,
			wantAvgLikes:    0,
			wantFrequency:   3.0,
			wantConsistency: ConsistencyVeryConsistent,
		},
		{
			name: "Irregular uploads are inconsistent",
			items: []models.ContentItem{
				itemAt(0, 100, 0), itemAt(1, 100, 0), itemAt(40, 100, 0),
			},
			wantAvgViews:    100,
			wantAvgLikes:    0,
			wantFrequency:   20.0,
			wantConsistency: ConsistencyInconsistent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateContentMetrics(tt.items)
			if got.AvgViewsPerVideo != tt.wantAvgViews {
				t.Errorf("AvgViewsPerVideo = %d, want %d", got.AvgViewsPerVideo, tt.wantAvgViews)
			}
			if got.AvgLikesPerVideo != tt.wantAvgLikes {
				t.Errorf("AvgLikesPerVideo = %d, want %d", got.AvgLikesPerVideo, tt.wantAvgLikes)
			}
			if got.UploadFrequencyDays != tt.wantFrequency {
				t.Errorf("UploadFrequencyDays = %v, want %v", got.UploadFrequencyDays, tt.wantFrequency)
			}
			if got.UploadConsistency != tt.wantConsistency {
				t.Errorf("UploadConsistency = %q, want %q", got.UploadConsistency, tt.wantConsistency)
			}
		})
	}
}

func TestEngagementRateString(t *testing.T) {
	tests := []struct {
		name        string
		totalViews  int64
		subscribers int64
		videoCount  int64
		want        string
	}{
		{"Normal case", 500000, 10000, 100, "50.00%"},
		{"Zero subscribers", 500000, 0, 100, "N/A"},
		{"Zero videos", 500000, 10000, 0, "N/A"},
		{"Fractional", 1000, 3000, 10, "3.33%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EngagementRateString(tt.totalViews, tt.subscribers, tt.videoCount)
			if got != tt.want {
				t.Errorf("EngagementRateString(%d, %d, %d) = %q, want %q",
					tt.totalViews, tt.subscribers, tt.videoCount, got, tt.want)
			}
		})
	}
}

func TestEngagementNumeric(t *testing.T) {
	tests := []struct {
		name      string
		avgViews  int64
		followers int64
		want      float64
	}{
		{"Normal case", 1200, 10000, 12.0},
		{"Zero followers", 1200, 0, 0},
		{"Zero views", 0, 10000, 0},
		{"Rounded to two decimals", 1000, 30000, 3.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EngagementNumeric(tt.avgViews, tt.followers)
			if got != tt.want {
				t.Errorf("EngagementNumeric(%d, %d) = %v, want %v", tt.avgViews, tt.followers, got, tt.want)
			}
		})
	}
}
