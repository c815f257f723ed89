// Package compose builds the personalized outreach and follow-up
// emails for the key distribution campaign. Personalization keys off
// the creator's most recent content: what game they played last, what
// their last video was about, and which platform they publish on.
package compose

import (
	"fmt"
	"strings"

	"outreach-stack/internal/models"
	"outreach-stack/shared/config"
)

// Games whose players are assumed to appreciate tight, skill-based
// platformers
var speedrunGames = []string{"celeste", "meat boy", "hollow knight", "cuphead", "ori"}

var coopTerms = []string{"co-op", "coop", "multiplayer", "local", "4 player"}

var coopSubjectTerms = []string{"co-op", "coop", "multiplayer"}

// Composer fills the campaign email templates from the configured
// game and sender identity.
type Composer struct {
	cfg *config.CampaignConfig
}

func New(cfg *config.CampaignConfig) *Composer {
	return &Composer{cfg: cfg}
}

// Outreach composes the initial key-offer email for one creator.
func (c *Composer) Outreach(inf *models.Influencer, email, steamKey string) models.EmailContent {
	name := inf.DisplayName
	if name == "" {
		name = inf.Username
	}
	if name == "" {
		name = "there"
	}

	lastVideoLower := strings.ToLower(inf.LastVideoTitle)

	opening := c.openingLine(inf, name)
	hook := c.featureHook(inf.Platform, lastVideoLower)
	subject := c.subject(lastVideoLower)

	body := fmt.Sprintf(`Hi %s,

%s

I'm %s from %s, and I've been developing %s - a fast-paced 2D platformer that's fully playable with just a mouse (gamepad support too!). It launches on Steam on %s.

%s

Here's what makes it special:
• Mouse-only controls (surprisingly challenging and satisfying!)
• Built for speedrunning with leaderboards on every level
• 4-player local co-op (perfect for couch gaming content!)
• Infinite roguelite mode with procedurally generated levels
• Eye-catching art style that performs great on social media

I'd love for you to check it out before launch. Here's your personal Steam key:

🔑 %s

No pressure whatsoever - if you enjoy it and want to share it with your audience, that would be incredible. If it's not your thing, no worries at all! I genuinely appreciate any feedback either way.

Want to see it in action first?
Steam Page: %s
Press Kit (trailers, screenshots, GIFs): %s

Our socials if you want a preview of the visual style:
Instagram: %s
TikTok: %s

Happy to answer any questions or provide additional info/assets!

Best,
%s
%s

P.S. - If you're into speedrunning, I'd be really curious to see what times you can get on the leaderboards. The movement tech has some surprising depth once you master it!`,
		name, opening,
		c.cfg.SenderName, c.cfg.Studio, c.cfg.GameName, c.cfg.ReleaseDate,
		hook, steamKey,
		c.cfg.SteamPage, c.cfg.PressKit,
		c.cfg.Instagram, c.cfg.TikTok,
		c.cfg.SenderName, c.cfg.Studio)

	return models.EmailContent{To: email, Subject: subject, Body: body}
}

// FollowUp composes the gentle reminder for creators who received a
// key but never responded.
func (c *Composer) FollowUp(name, email, originalKey string) models.EmailContent {
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Quick follow-up: %s launches tomorrow!", c.cfg.GameName)

	body := fmt.Sprintf(`Hi %s,

Just a quick follow-up on the %s Steam key I sent last week. The game launches tomorrow (%s), and I wanted to make sure the key worked for you!

Your key again: %s

If you've had a chance to try it, I'd love to hear what you think - especially curious if you've climbed any of the leaderboards!

If you're not interested or don't have time, totally understand - just let me know and I won't bother you again.

Either way, thanks for your time!

%s
%s

Steam Page: %s`,
		name, c.cfg.GameName, c.cfg.ReleaseDate, originalKey,
		c.cfg.SenderName, c.cfg.Studio, c.cfg.SteamPage)

	return models.EmailContent{To: email, Subject: subject, Body: body}
}

// openingLine picks the most specific hook available: a known
// skill-platformer they played beats speedrun content, which beats any
// recent game, which beats any recent video.
func (c *Composer) openingLine(inf *models.Influencer, name string) string {
	lastVideo := inf.LastVideoTitle
	lastGame := inf.LastGamePlayed
	lastVideoLower := strings.ToLower(lastVideo)
	lastGameLower := strings.ToLower(lastGame)

	switch {
	case lastGame != "" && containsAny(lastGameLower, speedrunGames):
		return fmt.Sprintf("I saw you recently played %s - clearly you appreciate tight, skill-based platformers!", lastGame)
	case lastVideo != "" && strings.Contains(lastVideoLower, "speedrun"):
		return fmt.Sprintf("I loved your speedrun content in %q - you're going to love this game!", truncate(lastVideo, 45))
	case lastGame != "":
		return fmt.Sprintf("I saw you recently played %s, and thought you might enjoy something a bit different!", lastGame)
	case lastVideo != "":
		return fmt.Sprintf("I loved your recent video %q - your %s community clearly appreciates great gaming content!",
			truncate(lastVideo, 50), followerString(inf.Followers))
	default:
		return fmt.Sprintf("Your %s community clearly appreciates great gaming content!", followerString(inf.Followers))
	}
}

func (c *Composer) featureHook(platform models.Platform, lastVideoLower string) string {
	platformLower := strings.ToLower(string(platform))

	switch {
	case strings.Contains(lastVideoLower, "speedrun") || strings.Contains(lastVideoLower, "speed"):
		return "The game was designed with speedrunners in mind - every level has leaderboards and the movement system rewards mastery. Plus, it's mouse-controlled, which adds a unique skill ceiling!"
	case containsAny(lastVideoLower, coopTerms):
		return "The 4-player local co-op is perfect for collaborative content - the chaos of coordinating mouse movements with friends is hilarious and challenging!"
	case platformLower == "instagram" || platformLower == "tiktok":
		return "The art style and animations have been killing it on social media (check our Instagram/TikTok if you're curious!) - very satisfying movement and visual feedback."
	default:
		return "It's got that 'one more try' addictiveness that makes for great content - tight controls, leaderboards, and surprising depth despite the simple mouse controls."
	}
}

func (c *Composer) subject(lastVideoLower string) string {
	switch {
	case strings.Contains(lastVideoLower, "speedrun"):
		return fmt.Sprintf("Speedrunner's dream? %s key for you", c.cfg.GameName)
	case containsAny(lastVideoLower, coopSubjectTerms):
		return fmt.Sprintf("4-player chaos: %s key inside", c.cfg.GameName)
	default:
		return fmt.Sprintf("Steam key: %s (mouse-controlled platformer)", c.cfg.GameName)
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

func followerString(followers int64) string {
	switch {
	case followers >= 1000000:
		return fmt.Sprintf("%.1fM", float64(followers)/1000000)
	case followers >= 1000:
		return fmt.Sprintf("%.1fK", float64(followers)/1000)
	default:
		return fmt.Sprintf("%d", followers)
	}
}
