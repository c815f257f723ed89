package influencerscout

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"outreach-stack/agents/influencer-scout/pipeline"
	"outreach-stack/agents/influencer-scout/twitch"
	"outreach-stack/agents/influencer-scout/youtube"
	"outreach-stack/internal/models"
	"outreach-stack/shared/config"
	"outreach-stack/shared/export"
	"outreach-stack/shared/scheduler"
)

// ScoutMetrics represents the metrics collected during a discovery run
type ScoutMetrics struct {
	YouTubeMatches int `json:"youtube_matches"`
	TwitchMatches  int `json:"twitch_matches"`
	WithEmail      int `json:"with_email"`
}

// GetSummary implements the scheduler.Metrics interface
func (m ScoutMetrics) GetSummary() string {
	return fmt.Sprintf("found %d YouTube and %d Twitch creators, %d with email",
		m.YouTubeMatches, m.TwitchMatches, m.WithEmail)
}

// ScoutAgent discovers gaming content creators on YouTube and Twitch
// and enriches each with contact and engagement signals. It implements
// the scheduler.Agent interface.
type ScoutAgent struct {
	config        *config.Config
	youtubeClient *youtube.Client
	twitchClient  *twitch.Client

	classifierKeywords pipeline.ClassifierKeywords
	sentimentKeywords  pipeline.SentimentKeywords
	businessTerms      []string
	icebreakerGames    []string
}

func NewScoutAgent(cfg *config.Config) *ScoutAgent {
	return &ScoutAgent{
		config:             cfg,
		classifierKeywords: pipeline.DefaultClassifierKeywords,
		sentimentKeywords:  pipeline.DefaultSentimentKeywords,
		businessTerms:      pipeline.DefaultBusinessTerms,
		icebreakerGames:    pipeline.DefaultIcebreakerGames,
	}
}

func (s *ScoutAgent) Name() string {
	return "Influencer Scout"
}

func (s *ScoutAgent) Initialize() error {
	log.Printf("Initializing %s...", s.Name())

	scout := &s.config.Scout
	if !scout.HasYouTubeCredentials() && !scout.HasTwitchCredentials() {
		return fmt.Errorf("no discovery credentials configured: set YOUTUBE_API_KEY and/or TWITCH_CLIENT_ID + TWITCH_CLIENT_SECRET")
	}

	if s.youtubeClient == nil && scout.HasYouTubeCredentials() {
		client, err := youtube.NewClient(context.Background(), scout, youtube.NewChannelCache())
		if err != nil {
			return fmt.Errorf("failed to create YouTube client: %w", err)
		}
		s.youtubeClient = client
		log.Println("YouTube client initialized")
	}

	return nil
}

func (s *ScoutAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()
	metrics := ScoutMetrics{}

	var influencers []*models.Influencer

	if s.youtubeClient != nil {
		log.Println("[1/2] Searching YouTube...")
		found, err := s.runYouTubePass(ctx)
		if err != nil {
			// One platform failing doesn't kill the run, but it is
			// reported distinctly from per-item skips
			if events != nil && events.OnPartialFailure != nil {
				events.OnPartialFailure(fmt.Errorf("YouTube discovery pass failed: %w", err), time.Since(startTime))
			}
			log.Printf("Warning: YouTube discovery pass failed: %v", err)
		} else {
			influencers = append(influencers, found...)
			metrics.YouTubeMatches = len(found)
		}
	} else {
		log.Println("[1/2] Skipping YouTube (no API key configured)")
	}

	if s.config.Scout.HasTwitchCredentials() {
		log.Println("[2/2] Searching Twitch...")
		found, err := s.runTwitchPass(ctx)
		if err != nil {
			if events != nil && events.OnPartialFailure != nil {
				events.OnPartialFailure(fmt.Errorf("Twitch discovery pass failed: %w", err), time.Since(startTime))
			}
			log.Printf("Warning: Twitch discovery pass failed: %v", err)
		} else {
			influencers = append(influencers, found...)
			metrics.TwitchMatches = len(found)
		}
	} else {
		log.Println("[2/2] Skipping Twitch (no credentials configured)")
	}

	for _, inf := range influencers {
		if inf.EmailCount > 0 {
			metrics.WithEmail++
		}
	}

	s.logSummary(influencers)

	if len(influencers) > 0 {
		if err := export.WriteCSV(influencers, s.config.Scout.OutputCSV); err != nil {
			if events != nil && events.OnCriticalFailure != nil {
				events.OnCriticalFailure(fmt.Errorf("failed to write CSV: %w", err), time.Since(startTime))
			}
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		log.Printf("CSV saved to %s", s.config.Scout.OutputCSV)

		if err := export.WriteJSON(influencers, s.config.Scout.BackupJSON); err != nil {
			return fmt.Errorf("failed to write JSON backup: %w", err)
		}
		log.Printf("JSON backup saved to %s", s.config.Scout.BackupJSON)

		priority := BalancedPriorityList(influencers, 25, 50)
		if err := export.WriteCSV(priority, s.config.Scout.PriorityCSV); err != nil {
			return fmt.Errorf("failed to write priority CSV: %w", err)
		}
		log.Printf("Top %d priority list saved to %s (balanced YouTube/Twitch)", len(priority), s.config.Scout.PriorityCSV)
	}

	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, time.Since(startTime))
	}

	return nil
}

func (s *ScoutAgent) runYouTubePass(ctx context.Context) ([]*models.Influencer, error) {
	scout := &s.config.Scout

	seeds, err := s.youtubeClient.SearchPlatformerVideos(ctx, scout.SearchKeywords, scout.DaysSinceLastVideo)
	if err != nil {
		return nil, err
	}

	// One seed per channel is enough; later hits are duplicates
	seedByChannel := make(map[string]*youtube.VideoSeed)
	var channelOrder []string
	for _, seed := range seeds {
		if _, ok := seedByChannel[seed.ChannelID]; !ok {
			seedByChannel[seed.ChannelID] = seed
			channelOrder = append(channelOrder, seed.ChannelID)
		}
	}
	log.Printf("Processing %d unique channels...", len(channelOrder))

	var influencers []*models.Influencer
	for _, channelID := range channelOrder {
		seed := seedByChannel[channelID]

		details, err := s.youtubeClient.GetChannelDetails(ctx, channelID)
		if err != nil {
			log.Printf("Warning: skipping channel %s: %v", channelID, err)
			continue
		}

		// Cheap subscriber filter before spending quota on videos
		if details.SubscriberCount < scout.MinFollowers || details.SubscriberCount > scout.MaxFollowers {
			continue
		}

		recent, err := s.youtubeClient.GetRecentVideos(ctx, channelID, 5)
		if err != nil {
			log.Printf("Warning: skipping channel %s: %v", channelID, err)
			continue
		}

		titles := make([]string, 0, len(recent))
		for _, item := range recent {
			titles = append(titles, item.Title)
		}
		if !pipeline.IsGamingChannel(s.classifierKeywords, details.Description, titles) {
			continue
		}

		influencers = append(influencers, s.buildYouTubeInfluencer(details, seed, recent))
	}

	log.Printf("%d YouTube channels match criteria", len(influencers))
	return influencers, nil
}

func (s *ScoutAgent) runTwitchPass(ctx context.Context) ([]*models.Influencer, error) {
	scout := &s.config.Scout

	client := s.twitchClient
	if client == nil {
		var err error
		client, err = twitch.NewClient(ctx, scout)
		if err != nil {
			return nil, err
		}
		s.twitchClient = client
	}

	var seeds []*twitch.StreamerSeed
	for _, gameName := range scout.TwitchGames {
		gameID, err := client.SearchGameID(ctx, gameName)
		if err != nil {
			log.Printf("Warning: game lookup for %q failed: %v", gameName, err)
			continue
		}
		if gameID == "" {
			log.Printf("Warning: game %q not found on Twitch", gameName)
			continue
		}

		found, err := client.GetStreamersByGame(ctx, gameID, scout.DaysSinceLastVideo)
		if err != nil {
			log.Printf("Warning: streamer search for %q failed: %v", gameName, err)
			continue
		}
		log.Printf("Searching %s... found %d videos", gameName, len(found))
		seeds = append(seeds, found...)
	}

	seenUsers := make(map[string]bool)
	var influencers []*models.Influencer
	for _, seed := range seeds {
		if seenUsers[seed.UserID] {
			continue
		}
		seenUsers[seed.UserID] = true

		details, err := client.GetUserDetails(ctx, seed.UserID)
		if err != nil {
			log.Printf("Warning: skipping streamer %s: %v", seed.UserName, err)
			continue
		}
		if details.FollowerCount < scout.MinFollowers || details.FollowerCount > scout.MaxFollowers {
			continue
		}

		recent, err := client.GetUserVideos(ctx, seed.UserID, 10)
		if err != nil {
			log.Printf("Warning: skipping streamer %s: %v", seed.UserName, err)
			continue
		}

		influencers = append(influencers, s.buildTwitchInfluencer(details, seed, recent))
	}

	log.Printf("%d Twitch streamers match criteria", len(influencers))
	return influencers, nil
}

func (s *ScoutAgent) buildYouTubeInfluencer(details *youtube.ChannelDetails, seed *youtube.VideoSeed, recent []models.ContentItem) *models.Influencer {
	emails := pipeline.ExtractEmails(details.Description)
	social := pipeline.ExtractSocialLinks(details.Description)
	sentiment := pipeline.AnalyzeSentiment(s.sentimentKeywords, details.Description)
	metrics := pipeline.CalculateContentMetrics(recent)

	inf := &models.Influencer{
		Platform:   models.PlatformYouTube,
		Username:   details.Title,
		CustomURL:  details.CustomURL,
		URL:        details.URL,
		Followers:  details.SubscriberCount,
		TotalViews: details.ViewCount,
		VideoCount: details.VideoCount,
		Country:    details.Country,

		LastVideoTitle: seed.VideoTitle,
		LastVideoDate:  seed.PublishedAt,
		LastVideoURL:   fmt.Sprintf("https://youtube.com/watch?v=%s", seed.VideoID),

		Emails:        emails,
		EmailCount:    len(emails),
		Twitter:       social["twitter"],
		Instagram:     social["instagram"],
		Discord:       social["discord"],
		TikTok:        social["tiktok"],
		BusinessTerms: pipeline.ExtractBusinessTerms(details.Description, s.businessTerms),

		BioSnippet: bioSnippet(details.Description),

		// Lifetime engagement for the display string, recent-video
		// engagement for the scored numeric
		EngagementRate:        pipeline.EngagementRateString(details.ViewCount, details.SubscriberCount, details.VideoCount),
		EngagementRateNumeric: pipeline.EngagementNumeric(metrics.AvgViewsPerVideo, details.SubscriberCount),
		AvgViewsPerVideo:      metrics.AvgViewsPerVideo,
		AvgLikesPerVideo:      metrics.AvgLikesPerVideo,
		UploadFrequencyDays:   metrics.UploadFrequencyDays,
		UploadConsistency:     metrics.UploadConsistency,

		IndieSentiment:           sentiment.Sentiment,
		IndieSentimentScore:      sentiment.Score,
		IndieSentimentIndicators: sentiment.Indicators,
	}

	response := pipeline.CalculateResponseLikelihood(inf)
	inf.ResponseLikelihood = response.Likelihood
	inf.ResponseScore = response.Score
	inf.ResponseFactors = response.Factors

	inf.Icebreaker = pipeline.GenerateIcebreaker(details.Title, seed.VideoTitle, details.SubscriberCount, "", s.icebreakerGames)

	return inf
}

func (s *ScoutAgent) buildTwitchInfluencer(details *twitch.UserDetails, seed *twitch.StreamerSeed, recent []models.ContentItem) *models.Influencer {
	emails := pipeline.ExtractEmails(details.Description)
	social := pipeline.ExtractSocialLinks(details.Description)
	sentiment := pipeline.AnalyzeSentiment(s.sentimentKeywords, details.Description)
	metrics := pipeline.CalculateContentMetrics(recent)

	engagementNumeric := pipeline.EngagementNumeric(metrics.AvgViewsPerVideo, details.FollowerCount)
	engagementRate := "N/A"
	if engagementNumeric > 0 {
		engagementRate = fmt.Sprintf("%.2f%%", engagementNumeric)
	}

	inf := &models.Influencer{
		Platform:        models.PlatformTwitch,
		Username:        details.Username,
		DisplayName:     details.DisplayName,
		URL:             details.URL,
		Followers:       details.FollowerCount,
		TotalViews:      details.ViewCount,
		VideoCount:      int64(len(recent)),
		BroadcasterType: details.BroadcasterType,

		LastVideoTitle: seed.Title,
		LastVideoDate:  seed.CreatedAt.Format(time.RFC3339),
		LastVideoURL:   seed.URL,
		LastGamePlayed: seed.GameName,

		Emails:        emails,
		EmailCount:    len(emails),
		Twitter:       social["twitter"],
		Instagram:     social["instagram"],
		Discord:       social["discord"],
		TikTok:        social["tiktok"],
		BusinessTerms: pipeline.ExtractBusinessTerms(details.Description, s.businessTerms),

		BioSnippet: bioSnippet(details.Description),

		EngagementRate:        engagementRate,
		EngagementRateNumeric: engagementNumeric,
		AvgViewsPerVideo:      metrics.AvgViewsPerVideo,
		UploadFrequencyDays:   metrics.UploadFrequencyDays,
		UploadConsistency:     metrics.UploadConsistency,

		IndieSentiment:           sentiment.Sentiment,
		IndieSentimentScore:      sentiment.Score,
		IndieSentimentIndicators: sentiment.Indicators,
	}

	response := pipeline.CalculateResponseLikelihood(inf)
	inf.ResponseLikelihood = response.Likelihood
	inf.ResponseScore = response.Score
	inf.ResponseFactors = response.Factors

	inf.Icebreaker = pipeline.GenerateIcebreaker(details.DisplayName, seed.Title, details.FollowerCount, seed.GameName, s.icebreakerGames)

	return inf
}

func bioSnippet(description string) string {
	runes := []rune(description)
	if len(runes) > 200 {
		return string(runes[:200]) + "..."
	}
	return description
}

// BalancedPriorityList picks the strongest leads while keeping the
// platforms balanced: up to perPlatform per platform by descending
// response score, then the remainder up to total from whichever
// platform has surplus.
func BalancedPriorityList(influencers []*models.Influencer, perPlatform, total int) []*models.Influencer {
	var youtubeList, twitchList []*models.Influencer
	for _, inf := range influencers {
		switch inf.Platform {
		case models.PlatformYouTube:
			youtubeList = append(youtubeList, inf)
		case models.PlatformTwitch:
			twitchList = append(twitchList, inf)
		}
	}

	byScore := func(list []*models.Influencer) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ResponseScore > list[j].ResponseScore
		})
	}
	byScore(youtubeList)
	byScore(twitchList)

	take := func(list []*models.Influencer, n int) []*models.Influencer {
		if len(list) < n {
			n = len(list)
		}
		return list[:n]
	}

	priority := append([]*models.Influencer{}, take(youtubeList, perPlatform)...)
	priority = append(priority, take(twitchList, perPlatform)...)

	// Fill the shortfall from whichever platform still has candidates
	for _, list := range [][]*models.Influencer{youtubeList, twitchList} {
		for i := perPlatform; i < len(list) && len(priority) < total; i++ {
			priority = append(priority, list[i])
		}
	}

	return priority
}

func (s *ScoutAgent) logSummary(influencers []*models.Influencer) {
	log.Printf("Total influencers found: %d", len(influencers))
	if len(influencers) == 0 {
		return
	}

	var withEmail, withTwitter, withDiscord, veryActive, consistent int
	var veryPositive, positive int
	var veryHigh, high int
	var freqSum float64
	var activeCreators int

	for _, inf := range influencers {
		if inf.EmailCount > 0 {
			withEmail++
		}
		if inf.Twitter != "" {
			withTwitter++
		}
		if inf.Discord != "" {
			withDiscord++
		}
		if inf.UploadFrequencyDays > 0 {
			activeCreators++
			freqSum += inf.UploadFrequencyDays
			if inf.UploadFrequencyDays <= 3 {
				veryActive++
			}
		}
		if inf.UploadConsistency == pipeline.ConsistencyVeryConsistent || inf.UploadConsistency == pipeline.ConsistencyConsistent {
			consistent++
		}
		switch inf.IndieSentiment {
		case pipeline.SentimentVeryPositive:
			veryPositive++
		case pipeline.SentimentPositive:
			positive++
		}
		switch inf.ResponseLikelihood {
		case pipeline.LikelihoodVeryHigh:
			veryHigh++
		case pipeline.LikelihoodHigh:
			high++
		}
	}

	log.Printf("Contact info: %d with email (%.1f%%), %d with Twitter, %d with Discord",
		withEmail, float64(withEmail)/float64(len(influencers))*100, withTwitter, withDiscord)
	if activeCreators > 0 {
		log.Printf("Content: avg upload frequency every %.1f days, %d very active, %d consistent uploaders",
			freqSum/float64(activeCreators), veryActive, consistent)
	}
	log.Printf("Sentiment: %d very positive, %d positive about indies", veryPositive, positive)
	log.Printf("Response likelihood: %d Very High, %d High - prioritize these", veryHigh, high)
}
