package pipeline

import (
	"fmt"
	"strings"
)

// FormatFollowers abbreviates an audience size for prose:
// 1_500_000 -> "1.5M", 12_400 -> "12.4K", 850 -> "850".
func FormatFollowers(count int64) string {
	switch {
	case count >= 1000000:
		return fmt.Sprintf("%.1fM", float64(count)/1000000)
	case count >= 1000:
		return fmt.Sprintf("%.1fK", float64(count)/1000)
	default:
		return fmt.Sprintf("%d", count)
	}
}

// GenerateIcebreaker builds a short personalized opening line. When no
// game name is given it scans the recent video title for a known
// platformer before falling back to a generic follower sentence.
func GenerateIcebreaker(name, recentVideo string, followers int64, gameName string, knownGames []string) string {
	if gameName == "" {
		recentLower := strings.ToLower(recentVideo)
		for _, game := range knownGames {
			if strings.Contains(recentLower, strings.ToLower(game)) {
				gameName = game
				break
			}
		}
	}

	followerStr := FormatFollowers(followers)

	if gameName != "" {
		return fmt.Sprintf("Hi %s! Loved your recent %s content. Your %s followers clearly appreciate your platformer gameplay!",
			name, gameName, followerStr)
	}

	title := recentVideo
	if runes := []rune(title); len(runes) > 50 {
		title = string(runes[:50])
	}
	return fmt.Sprintf("Hi %s! Really enjoyed your recent video '%s...'. Your %s community is impressive!",
		name, title, followerStr)
}
