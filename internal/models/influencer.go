package models

import "time"

type Platform string

const (
	PlatformYouTube Platform = "YouTube"
	PlatformTwitch  Platform = "Twitch"
)

// ContentItem is one recent video/VOD from a creator, the unit the
// metrics calculator operates on.
type ContentItem struct {
	ID           string    `json:"video_id"`
	Title        string    `json:"title"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}

// Influencer is one discovered creator with all derived outreach signals.
// Records are built once per discovery run and not mutated afterwards.
type Influencer struct {
	Platform    Platform `json:"platform"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name,omitempty"`
	CustomURL   string   `json:"custom_url,omitempty"`
	URL         string   `json:"url"`

	Followers       int64  `json:"followers"`
	TotalViews      int64  `json:"total_views"`
	VideoCount      int64  `json:"video_count"`
	Country         string `json:"country,omitempty"`
	BroadcasterType string `json:"broadcaster_type,omitempty"`

	LastVideoTitle string `json:"last_video_title"`
	LastVideoDate  string `json:"last_video_date"`
	LastVideoURL   string `json:"last_video_url"`
	LastGamePlayed string `json:"last_game_played,omitempty"`

	Emails        []string `json:"emails"`
	EmailCount    int      `json:"email_count"`
	Twitter       string   `json:"twitter,omitempty"`
	Instagram     string   `json:"instagram,omitempty"`
	Discord       string   `json:"discord,omitempty"`
	TikTok        string   `json:"tiktok,omitempty"`
	BusinessTerms []string `json:"business_terms,omitempty"`

	BioSnippet string `json:"bio_snippet"`

	EngagementRate        string  `json:"engagement_rate"`
	EngagementRateNumeric float64 `json:"engagement_rate_numeric"`
	AvgViewsPerVideo      int64   `json:"avg_views_per_video"`
	AvgLikesPerVideo      int64   `json:"avg_likes_per_video"`
	UploadFrequencyDays   float64 `json:"upload_frequency_days"`
	UploadConsistency     string  `json:"upload_consistency"`

	IndieSentiment           string   `json:"indie_sentiment"`
	IndieSentimentScore      float64  `json:"indie_sentiment_score"`
	IndieSentimentIndicators []string `json:"indie_sentiment_indicators"`

	ResponseLikelihood string   `json:"response_likelihood"`
	ResponseScore      int      `json:"response_score"`
	ResponseFactors    []string `json:"response_factors"`

	Icebreaker string `json:"icebreaker"`
}

// HasBusinessTerms reports whether any business-intent keyword was
// found in the creator's bio.
func (i *Influencer) HasBusinessTerms() bool {
	return len(i.BusinessTerms) > 0
}

// PrimaryEmail returns the first extracted address, or "" when the
// record has no usable contact address.
func (i *Influencer) PrimaryEmail() string {
	if len(i.Emails) == 0 {
		return ""
	}
	return i.Emails[0]
}
