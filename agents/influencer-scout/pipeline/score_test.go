package pipeline

import (
	"testing"

	"outreach-stack/internal/models"
)

func TestCalculateResponseLikelihood(t *testing.T) {
	tests := []struct {
		name           string
		inf            models.Influencer
		wantScore      int
		wantLikelihood string
	}{
		{
			name: "Base case with mid-tier audience",
			inf: models.Influencer{
				IndieSentiment: SentimentNeutral,
				Followers:      50000,
			},
			// 50 - 15 (no email) + 10 (mid-tier) = 45
			wantScore:      45,
			wantLikelihood: LikelihoodMedium,
		},
		{
			name: "Ideal lead",
			inf: models.Influencer{
				EmailCount:            1,
				Emails:                []string{"a@b.io"},
				BusinessTerms:         []string{"business inquiries"},
				Twitter:               "handle",
				Discord:               "invite",
				IndieSentiment:        SentimentVeryPositive,
				UploadFrequencyDays:   2,
				EngagementRateNumeric: 12,
				Followers:             20000,
			},
			// 50 +20 +15 +10 (3 contacts) +10 +10 +10 +10 = 135 -> clamped
			wantScore:      100,
			wantLikelihood: LikelihoodVeryHigh,
		},
		{
			name: "Unknown frequency contributes nothing",
			inf: models.Influencer{
				EmailCount:          1,
				Emails:              []string{"a@b.io"},
				IndieSentiment:      SentimentNeutral,
				UploadFrequencyDays: 0,
				Followers:           200,
			},
			// 50 + 20 = 70
			wantScore:      70,
			wantLikelihood: LikelihoodHigh,
		},
		{
			name: "Inactive huge channel with negative sentiment",
			inf: models.Influencer{
				IndieSentiment:        SentimentVeryNegative,
				UploadFrequencyDays:   45,
				EngagementRateNumeric: 0.5,
				Followers:             600000,
			},
			// 50 -15 -10 -10 -5 -10 = 0
			wantScore:      0,
			wantLikelihood: LikelihoodVeryLow,
		},
		{
			name: "Weekly poster with good engagement",
			inf: models.Influencer{
				EmailCount:            1,
				Emails:                []string{"a@b.io"},
				IndieSentiment:        SentimentPositive,
				UploadFrequencyDays:   6,
				EngagementRateNumeric: 7,
				Followers:             3000,
			},
			// 50 +20 +5 +5 +5 = 85
			wantScore:      85,
			wantLikelihood: LikelihoodVeryHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateResponseLikelihood(&tt.inf)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (factors: %v)", got.Score, tt.wantScore, got.Factors)
			}
			if got.Likelihood != tt.wantLikelihood {
				t.Errorf("likelihood = %q, want %q", got.Likelihood, tt.wantLikelihood)
			}
		})
	}
}

func TestResponseFactorOrdering(t *testing.T) {
	inf := models.Influencer{
		EmailCount:            1,
		Emails:                []string{"a@b.io"},
		BusinessTerms:         []string{"contact"},
		Twitter:               "x",
		Instagram:             "y",
		IndieSentiment:        SentimentVeryPositive,
		UploadFrequencyDays:   2,
		EngagementRateNumeric: 15,
		Followers:             10000,
	}

	want := []string{
		"✓ Email available",
		"✓ Open to business",
		"✓3 contact methods",
		"✓ Very positive about indies",
		"✓ Very active (posts daily)",
		"✓ High engagement rate",
		"✓ Mid-tier size (responsive)",
	}

	got := CalculateResponseLikelihood(&inf)
	if len(got.Factors) != len(want) {
		t.Fatalf("factors = %v, want %v", got.Factors, want)
	}
	for i := range want {
		if got.Factors[i] != want[i] {
			t.Errorf("factors[%d] = %q, want %q", i, got.Factors[i], want[i])
		}
	}
}
