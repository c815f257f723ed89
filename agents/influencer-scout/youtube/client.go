package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"outreach-stack/internal/models"
	"outreach-stack/shared/config"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const gamingCategoryID = "20"

// ChannelDetails is the per-channel record the scoring pipeline
// consumes: identity, statistics and the free-form description the
// extractors mine for contacts.
type ChannelDetails struct {
	ChannelID       string
	Title           string
	CustomURL       string
	Description     string
	SubscriberCount int64
	ViewCount       int64
	VideoCount      int64
	Country         string
	CreatedAt       string
	URL             string
}

// VideoSeed is one search hit: the video that surfaced a channel.
type VideoSeed struct {
	ChannelID    string
	ChannelTitle string
	VideoID      string
	VideoTitle   string
	PublishedAt  string
}

// ChannelCache memoizes channel detail lookups for one discovery run.
// Channel data is treated as immutable within a run, so there is no
// invalidation.
type ChannelCache struct {
	details map[string]*ChannelDetails
}

func NewChannelCache() *ChannelCache {
	return &ChannelCache{details: make(map[string]*ChannelDetails)}
}

func (c *ChannelCache) get(channelID string) (*ChannelDetails, bool) {
	d, ok := c.details[channelID]
	return d, ok
}

func (c *ChannelCache) put(channelID string, d *ChannelDetails) {
	c.details[channelID] = d
}

// Client wraps the YouTube Data API v3 for creator discovery. Reads
// are public data, so a plain API key is enough - no OAuth flow.
type Client struct {
	service *youtube.Service
	cache   *ChannelCache
}

func NewClient(ctx context.Context, cfg *config.ScoutConfig, cache *ChannelCache) (*Client, error) {
	if cfg.YouTubeAPIKey == "" {
		return nil, fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or scout.youtube_api_key)")
	}
	if cache == nil {
		cache = NewChannelCache()
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.YouTubeAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service, cache: cache}, nil
}

// SearchPlatformerVideos runs each configured search keyword against
// recent gaming videos and collects the channels behind the hits.
// Quota exhaustion stops the keyword loop; other per-keyword failures
// skip that keyword.
func (c *Client) SearchPlatformerVideos(ctx context.Context, keywords []string, days int) ([]*VideoSeed, error) {
	publishedAfter := time.Now().AddDate(0, 0, -days).Format(time.RFC3339)

	var seeds []*VideoSeed
	seenVideoIDs := make(map[string]bool)

	for _, keyword := range keywords {
		call := c.service.Search.List([]string{"snippet"}).
			Q(keyword).
			Type("video").
			VideoCategoryId(gamingCategoryID).
			PublishedAfter(publishedAfter).
			MaxResults(50).
			Context(ctx)

		response, err := call.Do()
		if err != nil {
			if isQuotaError(err) {
				log.Println("Warning: YouTube API quota exceeded, stopping search")
				break
			}
			log.Printf("Warning: search for %q failed: %v", keyword, err)
			continue
		}

		for _, item := range response.Items {
			if item.Id == nil || item.Id.VideoId == "" {
				continue
			}
			if seenVideoIDs[item.Id.VideoId] {
				continue
			}
			seenVideoIDs[item.Id.VideoId] = true

			seeds = append(seeds, &VideoSeed{
				ChannelID:    item.Snippet.ChannelId,
				ChannelTitle: item.Snippet.ChannelTitle,
				VideoID:      item.Id.VideoId,
				VideoTitle:   item.Snippet.Title,
				PublishedAt:  item.Snippet.PublishedAt,
			})
		}

		// Fixed pacing between search requests
		time.Sleep(100 * time.Millisecond)
	}

	log.Printf("Found %d total videos from searches", len(seeds))
	return seeds, nil
}

// GetChannelDetails fetches channel statistics and description,
// memoized through the run cache.
func (c *Client) GetChannelDetails(ctx context.Context, channelID string) (*ChannelDetails, error) {
	if details, ok := c.cache.get(channelID); ok {
		return details, nil
	}

	call := c.service.Channels.List([]string{"statistics", "snippet"}).
		Id(channelID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", channelID, err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("channel %s not found", channelID)
	}

	item := response.Items[0]
	details := &ChannelDetails{
		ChannelID:   channelID,
		Title:       item.Snippet.Title,
		CustomURL:   item.Snippet.CustomUrl,
		Description: item.Snippet.Description,
		Country:     item.Snippet.Country,
		CreatedAt:   item.Snippet.PublishedAt,
		URL:         fmt.Sprintf("https://youtube.com/channel/%s", channelID),
	}
	if item.Statistics != nil {
		details.SubscriberCount = int64(item.Statistics.SubscriberCount)
		details.ViewCount = int64(item.Statistics.ViewCount)
		details.VideoCount = int64(item.Statistics.VideoCount)
	}

	c.cache.put(channelID, details)
	return details, nil
}

// GetRecentVideos returns the channel's latest uploads with statistics.
func (c *Client) GetRecentVideos(ctx context.Context, channelID string, maxResults int64) ([]models.ContentItem, error) {
	searchCall := c.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Order("date").
		Type("video").
		MaxResults(maxResults).
		Context(ctx)

	searchResponse, err := searchCall.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent videos for %s: %w", channelID, err)
	}

	var videoIDs []string
	for _, item := range searchResponse.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}
	if len(videoIDs) == 0 {
		return nil, nil
	}

	videosCall := c.service.Videos.List([]string{"statistics", "snippet"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx)

	videosResponse, err := videosCall.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get video statistics: %w", err)
	}

	var items []models.ContentItem
	for _, video := range videosResponse.Items {
		item := models.ContentItem{
			ID:    video.Id,
			Title: video.Snippet.Title,
		}
		if publishedAt, err := time.Parse(time.RFC3339, video.Snippet.PublishedAt); err == nil {
			item.PublishedAt = publishedAt
		}
		if video.Statistics != nil {
			item.ViewCount = int64(video.Statistics.ViewCount)
			item.LikeCount = int64(video.Statistics.LikeCount)
			item.CommentCount = int64(video.Statistics.CommentCount)
		}
		items = append(items, item)
	}

	return items, nil
}

func isQuotaError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 403
	}
	return false
}
