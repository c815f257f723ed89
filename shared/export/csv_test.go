package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"outreach-stack/internal/models"
)

func sampleInfluencer() *models.Influencer {
	return &models.Influencer{
		Platform:              models.PlatformYouTube,
		Username:              "PixelPete",
		URL:                   "https://youtube.com/channel/UC123",
		Followers:             12000,
		TotalViews:            900000,
		VideoCount:            150,
		EngagementRate:        "50.00%",
		EngagementRateNumeric: 8.33,
		AvgViewsPerVideo:      1000,
		AvgLikesPerVideo:      40,
		UploadFrequencyDays:   3.5,
		UploadConsistency:     "consistent",
		LastVideoTitle:        "Celeste gameplay part 4",
		LastVideoDate:         "2025-05-30T12:00:00Z",
		LastVideoURL:          "https://youtube.com/watch?v=abc",
		Emails:                []string{"pete@pixel.tv", "biz@pixel.tv"},
		EmailCount:            2,
		Twitter:               "pixelpete",
		BusinessTerms:         []string{"business inquiries", "contact"},
		IndieSentiment:        "very_positive",
		IndieSentimentScore:   6,
		IndieSentimentIndicators: []string{
			"+indie", "+hidden gems",
		},
		ResponseLikelihood: "Very High",
		ResponseScore:      90,
		ResponseFactors:    []string{"✓ Email available", "✓ Open to business"},
		Icebreaker:         "Hi PixelPete!",
		BioSnippet:         "indie games all day",
	}
}

func TestWriteCSVHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV([]*models.Influencer{sampleInfluencer()}, path); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	header := rows[0]
	if header[0] != "platform" || header[len(header)-1] != "bio_snippet" {
		t.Errorf("unexpected header boundaries: %v", header)
	}
	if len(header) != len(csvColumns) {
		t.Errorf("header has %d columns, want %d", len(header), len(csvColumns))
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	original := sampleInfluencer()
	if err := WriteCSV([]*models.Influencer{original}, path); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	loaded, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d records, want 1", len(loaded))
	}

	got := loaded[0]
	if got.Platform != original.Platform {
		t.Errorf("platform = %q, want %q", got.Platform, original.Platform)
	}
	if got.Username != original.Username {
		t.Errorf("username = %q, want %q", got.Username, original.Username)
	}
	if got.Followers != original.Followers {
		t.Errorf("followers = %d, want %d", got.Followers, original.Followers)
	}
	if got.EngagementRateNumeric != original.EngagementRateNumeric {
		t.Errorf("engagement = %v, want %v", got.EngagementRateNumeric, original.EngagementRateNumeric)
	}
	if got.ResponseScore != original.ResponseScore {
		t.Errorf("response score = %d, want %d", got.ResponseScore, original.ResponseScore)
	}
	if len(got.Emails) != 2 || got.Emails[0] != "pete@pixel.tv" {
		t.Errorf("emails = %v, want %v", got.Emails, original.Emails)
	}
	if got.EmailCount != 2 {
		t.Errorf("email count = %d, want 2", got.EmailCount)
	}
	if got.PrimaryEmail() != "pete@pixel.tv" {
		t.Errorf("primary email = %q", got.PrimaryEmail())
	}
}

func TestReadCSVNoEmails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	inf := sampleInfluencer()
	inf.Emails = nil
	inf.EmailCount = 0

	if err := WriteCSV([]*models.Influencer{inf}, path); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}
	loaded, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	// "Not found" in the emails column must not come back as an address
	if len(loaded[0].Emails) != 0 || loaded[0].EmailCount != 0 {
		t.Errorf("emails = %v (count %d), want none", loaded[0].Emails, loaded[0].EmailCount)
	}
}
