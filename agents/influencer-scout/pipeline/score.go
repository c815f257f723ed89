package pipeline

import (
	"fmt"

	"outreach-stack/internal/models"
)

// Response likelihood categories.
const (
	LikelihoodVeryHigh = "Very High"
	LikelihoodHigh     = "High"
	LikelihoodMedium   = "Medium"
	LikelihoodLow      = "Low"
	LikelihoodVeryLow  = "Very Low"
)

// ResponseResult is the lead-priority estimate for one record.
type ResponseResult struct {
	Score      int
	Likelihood string
	Factors    []string
}

// CalculateResponseLikelihood combines contact availability, sentiment,
// cadence, engagement and audience size into a 0-100 lead score. The
// weights are empirical; the adjustment order is fixed so the factor
// list reads the same across runs.
func CalculateResponseLikelihood(inf *models.Influencer) ResponseResult {
	score := 50
	var factors []string

	if inf.EmailCount > 0 {
		score += 20
		factors = append(factors, "✓ Email available")
	} else {
		score -= 15
		factors = append(factors, "✗ No email found")
	}

	if inf.HasBusinessTerms() {
		score += 15
		factors = append(factors, "✓ Open to business")
	}

	contactMethods := 0
	if inf.EmailCount > 0 {
		contactMethods++
	}
	if inf.Twitter != "" {
		contactMethods++
	}
	if inf.Discord != "" {
		contactMethods++
	}
	if inf.Instagram != "" {
		contactMethods++
	}
	if contactMethods >= 3 {
		score += 10
		factors = append(factors, fmt.Sprintf("✓%d contact methods", contactMethods))
	}

	switch inf.IndieSentiment {
	case SentimentVeryPositive:
		score += 10
		factors = append(factors, "✓ Very positive about indies")
	case SentimentPositive:
		score += 5
		factors = append(factors, "✓ Positive about indies")
	case SentimentNegative, SentimentVeryNegative:
		score -= 10
		factors = append(factors, "✗ Not focused on indies")
	}

	// A frequency of 0 means unknown and contributes nothing
	freq := inf.UploadFrequencyDays
	switch {
	case freq > 0 && freq <= 3:
		score += 10
		factors = append(factors, "✓ Very active (posts daily)")
	case freq > 0 && freq <= 7:
		score += 5
		factors = append(factors, "✓ Active (posts weekly)")
	case freq > 30:
		score -= 10
		factors = append(factors, "✗ Inactive creator")
	}

	engagement := inf.EngagementRateNumeric
	switch {
	case engagement > 10:
		score += 10
		factors = append(factors, "✓ High engagement rate")
	case engagement > 5:
		score += 5
		factors = append(factors, "✓ Good engagement")
	case engagement > 0 && engagement < 1:
		score -= 5
		factors = append(factors, "~ Low engagement")
	}

	if inf.Followers >= 5000 && inf.Followers <= 100000 {
		score += 10
		factors = append(factors, "✓ Mid-tier size (responsive)")
	} else if inf.Followers > 500000 {
		score -= 10
		factors = append(factors, "~ Very large (less personal)")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	var likelihood string
	switch {
	case score >= 75:
		likelihood = LikelihoodVeryHigh
	case score >= 60:
		likelihood = LikelihoodHigh
	case score >= 40:
		likelihood = LikelihoodMedium
	case score >= 25:
		likelihood = LikelihoodLow
	default:
		likelihood = LikelihoodVeryLow
	}

	return ResponseResult{
		Score:      score,
		Likelihood: likelihood,
		Factors:    factors,
	}
}
