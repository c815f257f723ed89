package pipeline

import "testing"

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantScore      float64
		wantSentiment  string
		wantIndicators []string
	}{
		{
			name:           "Empty text is neutral",
			text:           "",
			wantScore:      0,
			wantSentiment:  SentimentNeutral,
			wantIndicators: []string{},
		},
		{
			name:          "Strong indie affinity",
			text:          "I love indie games, always hunting hidden gems from small studios",
			wantScore:     6,
			wantSentiment: SentimentVeryPositive,
			wantIndicators: []string{
				"+indie", "+small studios", "+hidden gems",
			},
		},
		{
			name:           "Single positive keyword",
			text:           "mostly experimental stuff here",
			wantScore:      2,
			wantSentiment:  SentimentPositive,
			wantIndicators: []string{"+experimental"},
		},
		{
			name:           "Negative stance",
			text:           "aaa only, no indie on this channel",
			wantScore:      -4,
			wantSentiment:  SentimentVeryNegative,
			wantIndicators: []string{"+indie", "-aaa only", "-no indie"},
		},
		{
			name:           "Neutral keyword only",
			text:           "variety content, all games welcome",
			wantScore:      1,
			wantSentiment:  SentimentPositive,
			wantIndicators: []string{},
		},
		{
			name:          "Indicators capped at five",
			text:          "indie, independent games, small studios, hidden gems, unique games, creative games",
			wantScore:     10,
			wantSentiment: SentimentVeryPositive,
			wantIndicators: []string{
				"+indie", "+independent games", "+small studios", "+hidden gems", "+unique games",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeSentiment(DefaultSentimentKeywords, tt.text)
			if got.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Sentiment != tt.wantSentiment {
				t.Errorf("sentiment = %q, want %q", got.Sentiment, tt.wantSentiment)
			}
			if len(got.Indicators) != len(tt.wantIndicators) {
				t.Fatalf("indicators = %v, want %v", got.Indicators, tt.wantIndicators)
			}
			for i := range got.Indicators {
				if got.Indicators[i] != tt.wantIndicators[i] {
					t.Errorf("indicators[%d] = %q, want %q", i, got.Indicators[i], tt.wantIndicators[i])
				}
			}
		})
	}
}
