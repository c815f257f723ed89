package pipeline

import "strings"

// IsGamingChannel decides whether a channel belongs to a gaming content
// creator, as opposed to a game developer or an unrelated creator.
// Developer signals weigh double: a channel that talks about making
// games is a peer, not an outreach target.
func IsGamingChannel(kw ClassifierKeywords, description string, videoTitles []string) bool {
	text := strings.ToLower(description + " " + strings.Join(videoTitles, " "))

	devScore := 0
	for _, keyword := range kw.Developer {
		if strings.Contains(text, keyword) {
			devScore += 2
		}
	}

	creatorScore := 0
	for _, keyword := range kw.Creator {
		if strings.Contains(text, keyword) {
			creatorScore++
		}
	}

	nonGamingScore := 0
	for _, keyword := range kw.NonGaming {
		if strings.Contains(text, keyword) {
			nonGamingScore++
		}
	}

	if devScore > 1 {
		return false
	}

	// Ties go to acceptance
	if nonGamingScore > creatorScore {
		return false
	}

	return creatorScore >= 2
}
