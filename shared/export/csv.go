package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"outreach-stack/internal/models"
)

// csvColumns is the stable export schema. Downstream tooling keys off
// these names, so the order and spelling are fixed.
var csvColumns = []string{
	"platform", "username", "display_name", "url", "followers", "total_views", "video_count",
	"engagement_rate", "engagement_rate_numeric", "avg_views_per_video", "avg_likes_per_video",
	"upload_frequency_days", "upload_consistency", "last_video_title", "last_video_date",
	"last_video_url", "last_game_played", "indie_sentiment", "indie_sentiment_score",
	"indie_sentiment_indicators", "response_likelihood", "response_score", "response_factors",
	"emails", "email_count", "has_business_terms", "business_terms", "twitter", "instagram",
	"discord", "tiktok", "country", "broadcaster_type", "icebreaker", "bio_snippet",
}

// WriteCSV writes influencer records with the fixed header row.
func WriteCSV(influencers []*models.Influencer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, inf := range influencers {
		if err := writer.Write(csvRow(inf)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write failed: %w", err)
	}
	return nil
}

func csvRow(inf *models.Influencer) []string {
	emails := "Not found"
	if len(inf.Emails) > 0 {
		emails = strings.Join(inf.Emails, ", ")
	}

	hasBusinessTerms := "No"
	if inf.HasBusinessTerms() {
		hasBusinessTerms = "Yes"
	}

	return []string{
		string(inf.Platform),
		inf.Username,
		inf.DisplayName,
		inf.URL,
		strconv.FormatInt(inf.Followers, 10),
		strconv.FormatInt(inf.TotalViews, 10),
		strconv.FormatInt(inf.VideoCount, 10),
		inf.EngagementRate,
		formatFloat(inf.EngagementRateNumeric),
		strconv.FormatInt(inf.AvgViewsPerVideo, 10),
		strconv.FormatInt(inf.AvgLikesPerVideo, 10),
		formatFloat(inf.UploadFrequencyDays),
		inf.UploadConsistency,
		inf.LastVideoTitle,
		inf.LastVideoDate,
		inf.LastVideoURL,
		inf.LastGamePlayed,
		inf.IndieSentiment,
		formatFloat(inf.IndieSentimentScore),
		strings.Join(inf.IndieSentimentIndicators, ", "),
		inf.ResponseLikelihood,
		strconv.Itoa(inf.ResponseScore),
		strings.Join(inf.ResponseFactors, " | "),
		emails,
		strconv.Itoa(inf.EmailCount),
		hasBusinessTerms,
		strings.Join(inf.BusinessTerms, ", "),
		inf.Twitter,
		inf.Instagram,
		inf.Discord,
		inf.TikTok,
		inf.Country,
		inf.BroadcasterType,
		inf.Icebreaker,
		inf.BioSnippet,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ReadCSV loads influencer records back from an export, tolerating
// files written by older exports as long as the named columns exist.
func ReadCSV(path string) ([]*models.Influencer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	intField := func(row []string, name string) int64 {
		n, _ := strconv.ParseInt(field(row, name), 10, 64)
		return n
	}
	floatField := func(row []string, name string) float64 {
		f, _ := strconv.ParseFloat(field(row, name), 64)
		return f
	}

	var influencers []*models.Influencer
	for _, row := range records[1:] {
		inf := &models.Influencer{
			Platform:              models.Platform(field(row, "platform")),
			Username:              field(row, "username"),
			DisplayName:           field(row, "display_name"),
			URL:                   field(row, "url"),
			Followers:             intField(row, "followers"),
			TotalViews:            intField(row, "total_views"),
			VideoCount:            intField(row, "video_count"),
			EngagementRate:        field(row, "engagement_rate"),
			EngagementRateNumeric: floatField(row, "engagement_rate_numeric"),
			AvgViewsPerVideo:      intField(row, "avg_views_per_video"),
			AvgLikesPerVideo:      intField(row, "avg_likes_per_video"),
			UploadFrequencyDays:   floatField(row, "upload_frequency_days"),
			UploadConsistency:     field(row, "upload_consistency"),
			LastVideoTitle:        field(row, "last_video_title"),
			LastVideoDate:         field(row, "last_video_date"),
			LastVideoURL:          field(row, "last_video_url"),
			LastGamePlayed:        field(row, "last_game_played"),
			IndieSentiment:        field(row, "indie_sentiment"),
			IndieSentimentScore:   floatField(row, "indie_sentiment_score"),
			ResponseLikelihood:    field(row, "response_likelihood"),
			ResponseScore:         int(intField(row, "response_score")),
			Twitter:               field(row, "twitter"),
			Instagram:             field(row, "instagram"),
			Discord:               field(row, "discord"),
			TikTok:                field(row, "tiktok"),
			Country:               field(row, "country"),
			BroadcasterType:       field(row, "broadcaster_type"),
			Icebreaker:            field(row, "icebreaker"),
			BioSnippet:            field(row, "bio_snippet"),
		}

		if emails := field(row, "emails"); emails != "" && emails != "Not found" {
			for _, e := range strings.Split(emails, ",") {
				if e = strings.TrimSpace(e); e != "" {
					inf.Emails = append(inf.Emails, e)
				}
			}
		}
		inf.EmailCount = len(inf.Emails)

		if indicators := field(row, "indie_sentiment_indicators"); indicators != "" {
			inf.IndieSentimentIndicators = strings.Split(indicators, ", ")
		}
		if factors := field(row, "response_factors"); factors != "" {
			inf.ResponseFactors = strings.Split(factors, " | ")
		}
		if terms := field(row, "business_terms"); terms != "" {
			inf.BusinessTerms = strings.Split(terms, ", ")
		}

		influencers = append(influencers, inf)
	}

	return influencers, nil
}
