package pipeline

// Keyword tables are data, not logic: every classifier and scorer takes
// its table explicitly so alternate tables can be swapped in from config
// or tests. The defaults below are the tuned production lists; the
// weights they feed are empirical and must not be "improved" without
// re-baselining the scored output.

// ClassifierKeywords separates gaming content creators from game
// developers and unrelated channels.
type ClassifierKeywords struct {
	Developer []string `yaml:"developer"`
	Creator   []string `yaml:"creator"`
	NonGaming []string `yaml:"non_gaming"`
}

// SentimentKeywords scores a bio's stance toward indie games.
type SentimentKeywords struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
	Neutral  []string `yaml:"neutral"`
}

var DefaultClassifierKeywords = ClassifierKeywords{
	Developer: []string{
		"game developer", "game dev", "gamedev", "indie dev",
		"developing", "my game", "our game", "game studio",
		"game designer", "game artist", "game programmer",
		"unity tutorial", "unreal tutorial", "godot tutorial",
		"game development", "making games", "created by",
	},
	Creator: []string{
		"gameplay", "playthrough", "lets play", "let's play",
		"walkthrough", "speedrun", "playing", "streamer",
		"twitch", "gamer", "gaming channel", "game review",
		"first impressions", "indie game showcase",
	},
	NonGaming: []string{
		"vlog", "recipe", "cooking", "makeup", "fashion",
		"lifestyle", "music video", "official music",
	},
}

var DefaultSentimentKeywords = SentimentKeywords{
	Positive: []string{
		"indie", "independent games", "small studios", "indie dev",
		"support indie", "hidden gems", "indie titles", "indie scene",
		"unique games", "creative games", "innovative", "experimental",
		"passion project", "handcrafted", "artistic", "indie darling",
	},
	Negative: []string{
		"aaa only", "no indie", "major titles only", "big budget only",
		"triple-a exclusive",
	},
	Neutral: []string{
		"all games", "variety", "mixed content", "different genres",
	},
}

// DefaultBusinessTerms are matched in order; extraction preserves this
// ordering in its results.
var DefaultBusinessTerms = []string{
	"business inquiries", "business email", "sponsorships",
	"partnerships", "collaborations", "contact", "booking",
	"brand deals", "marketing", "pr", "management",
}

// DefaultIcebreakerGames are well-known platformers scanned for in
// recent video titles, first match wins.
var DefaultIcebreakerGames = []string{
	"Celeste", "Hollow Knight", "Cuphead", "Dead Cells", "Ori",
}
