package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"outreach-stack/internal/models"
	"outreach-stack/shared/config"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	tokenURL = "https://id.twitch.tv/oauth2/token"
	helixURL = "https://api.twitch.tv/helix"
)

// StreamerSeed is one archived broadcast that surfaced a streamer.
type StreamerSeed struct {
	UserID    string
	UserName  string
	Title     string
	URL       string
	CreatedAt time.Time
	ViewCount int64
	GameName  string
}

// UserDetails is the per-streamer record the scoring pipeline consumes.
type UserDetails struct {
	UserID          string
	Username        string
	DisplayName     string
	Description     string
	FollowerCount   int64
	ViewCount       int64
	BroadcasterType string
	CreatedAt       string
	URL             string
}

// Client wraps the Twitch Helix API using the app-token
// client-credentials flow. The oauth2 transport handles token fetch
// and refresh; Helix additionally requires the Client-ID header on
// every request.
type Client struct {
	httpClient *http.Client
	clientID   string
}

// NewClient authenticates against the Twitch token endpoint. A total
// authentication failure here is fatal for the whole Twitch discovery
// pass and surfaces immediately.
func NewClient(ctx context.Context, cfg *config.ScoutConfig) (*Client, error) {
	if !cfg.HasTwitchCredentials() {
		return nil, fmt.Errorf("Twitch credentials are required (set TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET)")
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.TwitchClientID,
		ClientSecret: cfg.TwitchClientSecret,
		TokenURL:     tokenURL,
	}

	// Fetch a token eagerly so credential problems fail the pass up
	// front instead of on the first Helix call
	if _, err := cc.Token(ctx); err != nil {
		return nil, fmt.Errorf("failed to authenticate with Twitch: %w", err)
	}

	return &Client{
		httpClient: cc.Client(ctx),
		clientID:   cfg.TwitchClientID,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, helixURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Client-ID", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("twitch API error: %s %s returned %s", http.MethodGet, path, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// SearchGameID resolves a game name to its Twitch category ID.
func (c *Client) SearchGameID(ctx context.Context, gameName string) (string, error) {
	var response struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}

	params := url.Values{"name": {gameName}}
	if err := c.getJSON(ctx, "/games", params, &response); err != nil {
		return "", fmt.Errorf("failed to look up game %q: %w", gameName, err)
	}
	if len(response.Data) == 0 {
		return "", nil
	}
	return response.Data[0].ID, nil
}

// GetStreamersByGame returns streamers with archived broadcasts of a
// game within the last `days` days.
func (c *Client) GetStreamersByGame(ctx context.Context, gameID string, days int) ([]*StreamerSeed, error) {
	var response struct {
		Data []struct {
			UserID    string `json:"user_id"`
			UserName  string `json:"user_name"`
			Title     string `json:"title"`
			URL       string `json:"url"`
			CreatedAt string `json:"created_at"`
			ViewCount int64  `json:"view_count"`
			GameName  string `json:"game_name"`
		} `json:"data"`
	}

	params := url.Values{
		"game_id": {gameID},
		"first":   {"100"},
		"type":    {"archive"},
		"sort":    {"time"},
		"period":  {"month"},
	}
	if err := c.getJSON(ctx, "/videos", params, &response); err != nil {
		return nil, fmt.Errorf("failed to list videos for game %s: %w", gameID, err)
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	var streamers []*StreamerSeed
	for _, video := range response.Data {
		createdAt, err := time.Parse(time.RFC3339, video.CreatedAt)
		if err != nil || createdAt.Before(cutoff) {
			continue
		}
		streamers = append(streamers, &StreamerSeed{
			UserID:    video.UserID,
			UserName:  video.UserName,
			Title:     video.Title,
			URL:       video.URL,
			CreatedAt: createdAt,
			ViewCount: video.ViewCount,
			GameName:  video.GameName,
		})
	}

	return streamers, nil
}

// GetUserDetails fetches a streamer's profile and follower count.
func (c *Client) GetUserDetails(ctx context.Context, userID string) (*UserDetails, error) {
	var userResponse struct {
		Data []struct {
			Login           string `json:"login"`
			DisplayName     string `json:"display_name"`
			Description     string `json:"description"`
			ViewCount       int64  `json:"view_count"`
			BroadcasterType string `json:"broadcaster_type"`
			CreatedAt       string `json:"created_at"`
		} `json:"data"`
	}

	if err := c.getJSON(ctx, "/users", url.Values{"id": {userID}}, &userResponse); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if len(userResponse.Data) == 0 {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	user := userResponse.Data[0]

	// Follower lookup failing is not fatal, the record just scores
	// with zero followers and gets range-filtered
	var followerCount int64
	var followerResponse struct {
		Total int64 `json:"total"`
	}
	if err := c.getJSON(ctx, "/channels/followers", url.Values{"broadcaster_id": {userID}}, &followerResponse); err == nil {
		followerCount = followerResponse.Total
	}

	return &UserDetails{
		UserID:          userID,
		Username:        user.Login,
		DisplayName:     user.DisplayName,
		Description:     user.Description,
		FollowerCount:   followerCount,
		ViewCount:       user.ViewCount,
		BroadcasterType: user.BroadcasterType,
		CreatedAt:       user.CreatedAt,
		URL:             fmt.Sprintf("https://twitch.tv/%s", user.Login),
	}, nil
}

// GetUserVideos returns a streamer's recent archived broadcasts.
func (c *Client) GetUserVideos(ctx context.Context, userID string, maxResults int) ([]models.ContentItem, error) {
	var response struct {
		Data []struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			CreatedAt string `json:"created_at"`
			ViewCount int64  `json:"view_count"`
		} `json:"data"`
	}

	params := url.Values{
		"user_id": {userID},
		"first":   {fmt.Sprintf("%d", maxResults)},
		"type":    {"archive"},
	}
	if err := c.getJSON(ctx, "/videos", params, &response); err != nil {
		return nil, fmt.Errorf("failed to list videos for user %s: %w", userID, err)
	}

	var items []models.ContentItem
	for _, video := range response.Data {
		item := models.ContentItem{
			ID:        video.ID,
			Title:     video.Title,
			ViewCount: video.ViewCount,
		}
		if publishedAt, err := time.Parse(time.RFC3339, video.CreatedAt); err == nil {
			item.PublishedAt = publishedAt
		}
		items = append(items, item)
	}

	return items, nil
}
