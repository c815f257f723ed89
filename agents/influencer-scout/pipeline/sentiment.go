package pipeline

import (
	"math"
	"strings"
)

// Sentiment categories, ordered from most to least favorable.
const (
	SentimentVeryPositive = "very_positive"
	SentimentPositive     = "positive"
	SentimentNeutral      = "neutral"
	SentimentNegative     = "negative"
	SentimentVeryNegative = "very_negative"
)

// SentimentResult captures a bio's stance toward indie games.
type SentimentResult struct {
	Score      float64
	Sentiment  string
	Indicators []string
}

// AnalyzeSentiment scores a bio/description for indie game affinity
// using weighted keyword tallies. Positive matches count double,
// negative matches triple against, neutral matches half. The score is
// clamped to [-10, 10]. Indicators list matched keywords with +/-
// prefixes, positives before negatives, capped at five.
func AnalyzeSentiment(kw SentimentKeywords, text string) SentimentResult {
	if text == "" {
		return SentimentResult{Score: 0, Sentiment: SentimentNeutral, Indicators: []string{}}
	}

	textLower := strings.ToLower(text)

	positiveCount := 0
	negativeCount := 0
	neutralCount := 0
	for _, keyword := range kw.Positive {
		if strings.Contains(textLower, keyword) {
			positiveCount++
		}
	}
	for _, keyword := range kw.Negative {
		if strings.Contains(textLower, keyword) {
			negativeCount++
		}
	}
	for _, keyword := range kw.Neutral {
		if strings.Contains(textLower, keyword) {
			neutralCount++
		}
	}

	score := float64(positiveCount)*2 - float64(negativeCount)*3 + float64(neutralCount)*0.5
	score = math.Max(-10, math.Min(10, score))
	score = math.Round(score*100) / 100

	var sentiment string
	switch {
	case score >= 3:
		sentiment = SentimentVeryPositive
	case score >= 1:
		sentiment = SentimentPositive
	case score >= -1:
		sentiment = SentimentNeutral
	case score >= -3:
		sentiment = SentimentNegative
	default:
		sentiment = SentimentVeryNegative
	}

	indicators := []string{}
	for _, keyword := range kw.Positive {
		if strings.Contains(textLower, keyword) {
			indicators = append(indicators, "+"+keyword)
		}
	}
	for _, keyword := range kw.Negative {
		if strings.Contains(textLower, keyword) {
			indicators = append(indicators, "-"+keyword)
		}
	}
	if len(indicators) > 5 {
		indicators = indicators[:5]
	}

	return SentimentResult{
		Score:      score,
		Sentiment:  sentiment,
		Indicators: indicators,
	}
}
