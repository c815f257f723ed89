package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Scout      ScoutConfig      `yaml:"scout"`
	Campaign   CampaignConfig   `yaml:"campaign"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Schedule   string           `yaml:"schedule"`
}

// ScoutConfig drives the influencer discovery agent.
type ScoutConfig struct {
	YouTubeAPIKey      string `yaml:"youtube_api_key" env:"YOUTUBE_API_KEY"`
	TwitchClientID     string `yaml:"twitch_client_id" env:"TWITCH_CLIENT_ID"`
	TwitchClientSecret string `yaml:"twitch_client_secret" env:"TWITCH_CLIENT_SECRET"`

	MinFollowers       int64 `yaml:"min_followers"`
	MaxFollowers       int64 `yaml:"max_followers"`
	DaysSinceLastVideo int   `yaml:"days_since_last_video"`

	SearchKeywords []string `yaml:"search_keywords"`
	TwitchGames    []string `yaml:"twitch_games"`

	OutputCSV   string `yaml:"output_csv"`
	BackupJSON  string `yaml:"backup_json"`
	PriorityCSV string `yaml:"priority_csv"`
}

// CampaignConfig drives the key distribution agent. The game/sender
// fields fill the outreach templates.
type CampaignConfig struct {
	GoogleClientID     string `yaml:"google_client_id" env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `yaml:"google_client_secret" env:"GOOGLE_CLIENT_SECRET"`
	TokenFile          string `yaml:"token_file"`

	GameName    string `yaml:"game_name"`
	ReleaseDate string `yaml:"release_date"`
	SenderName  string `yaml:"sender_name"`
	Studio      string `yaml:"studio"`
	SenderEmail string `yaml:"sender_email"`

	SteamPage string `yaml:"steam_page"`
	PressKit  string `yaml:"press_kit"`
	Instagram string `yaml:"instagram"`
	TikTok    string `yaml:"tiktok"`

	CSVFile            string `yaml:"csv_file"`
	KeyFile            string `yaml:"key_file"`
	AssignmentsFile    string `yaml:"assignments_file"`
	DraftsFile         string `yaml:"drafts_file"`
	FollowUpDraftsFile string `yaml:"followup_drafts_file"`

	FollowUpDays int `yaml:"followup_days"`
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		// No config file is fine, credentials can come from the environment
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Scout.YouTubeAPIKey == "" {
		c.Scout.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if c.Scout.TwitchClientID == "" {
		c.Scout.TwitchClientID = os.Getenv("TWITCH_CLIENT_ID")
	}
	if c.Scout.TwitchClientSecret == "" {
		c.Scout.TwitchClientSecret = os.Getenv("TWITCH_CLIENT_SECRET")
	}
	if c.Campaign.GoogleClientID == "" {
		c.Campaign.GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if c.Campaign.GoogleClientSecret == "" {
		c.Campaign.GoogleClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}

	if c.Scout.MinFollowers == 0 {
		c.Scout.MinFollowers = 500
	}
	if c.Scout.MaxFollowers == 0 {
		c.Scout.MaxFollowers = 100000
	}
	if c.Scout.DaysSinceLastVideo == 0 {
		c.Scout.DaysSinceLastVideo = 60
	}
	if len(c.Scout.SearchKeywords) == 0 {
		c.Scout.SearchKeywords = []string{
			"celeste gameplay",
			"hollow knight gameplay",
			"indie platformer gameplay",
			"metroidvania gameplay",
			"platformer speedrun",
			"2d platformer let's play",
			"cuphead gameplay",
			"dead cells gameplay",
		}
	}
	if len(c.Scout.TwitchGames) == 0 {
		c.Scout.TwitchGames = []string{
			"Celeste", "Hollow Knight", "Cuphead", "Dead Cells",
			"Ori and the Will of the Wisps", "Super Meat Boy",
			"Shovel Knight", "The Messenger", "Blasphemous",
			"Ori and the Blind Forest",
		}
	}
	if c.Scout.OutputCSV == "" {
		c.Scout.OutputCSV = "influencers_with_contacts.csv"
	}
	if c.Scout.BackupJSON == "" {
		c.Scout.BackupJSON = "influencers_backup.json"
	}
	if c.Scout.PriorityCSV == "" {
		c.Scout.PriorityCSV = "influencers_priority_top50.csv"
	}

	if c.Campaign.TokenFile == "" {
		c.Campaign.TokenFile = "gmail_token.json"
	}
	if c.Campaign.GameName == "" {
		c.Campaign.GameName = "This is no cave"
	}
	if c.Campaign.ReleaseDate == "" {
		c.Campaign.ReleaseDate = "October 17th"
	}
	if c.Campaign.SenderName == "" {
		c.Campaign.SenderName = "Dimitri Kouliche"
	}
	if c.Campaign.Studio == "" {
		c.Campaign.Studio = "monome.studio"
	}
	if c.Campaign.SenderEmail == "" {
		c.Campaign.SenderEmail = "dimitri@monome.studio"
	}
	if c.Campaign.SteamPage == "" {
		c.Campaign.SteamPage = "https://store.steampowered.com/app/2852760/This_Is_No_Cave/"
	}
	if c.Campaign.PressKit == "" {
		c.Campaign.PressKit = "https://drive.google.com/drive/folders/15G7kTkI2JRpEGLLCwWsPjb02QjdazZX2"
	}
	if c.Campaign.Instagram == "" {
		c.Campaign.Instagram = "https://www.instagram.com/monome.studio/"
	}
	if c.Campaign.TikTok == "" {
		c.Campaign.TikTok = "https://www.tiktok.com/@monomestudio"
	}
	if c.Campaign.CSVFile == "" {
		c.Campaign.CSVFile = c.Scout.PriorityCSV
	}
	if c.Campaign.KeyFile == "" {
		c.Campaign.KeyFile = "steam_keys.txt"
	}
	if c.Campaign.AssignmentsFile == "" {
		c.Campaign.AssignmentsFile = "key_assignments.json"
	}
	if c.Campaign.DraftsFile == "" {
		c.Campaign.DraftsFile = "email_drafts.txt"
	}
	if c.Campaign.FollowUpDraftsFile == "" {
		c.Campaign.FollowUpDraftsFile = "followup_drafts.txt"
	}
	if c.Campaign.FollowUpDays == 0 {
		c.Campaign.FollowUpDays = 7
	}

	if c.Monitoring.HealthPort == 0 {
		c.Monitoring.HealthPort = 8080
	}
	if c.Schedule == "" {
		c.Schedule = "0 0 9 * * *" // Daily at 9 AM
	}
}

func (c *Config) validate() error {
	if c.Scout.MinFollowers > c.Scout.MaxFollowers {
		return fmt.Errorf("min_followers (%d) must not exceed max_followers (%d)",
			c.Scout.MinFollowers, c.Scout.MaxFollowers)
	}
	if c.Scout.DaysSinceLastVideo < 0 {
		return fmt.Errorf("days_since_last_video must not be negative")
	}
	if c.Campaign.FollowUpDays < 0 {
		return fmt.Errorf("followup_days must not be negative")
	}
	return nil
}

// HasYouTubeCredentials reports whether the YouTube discovery pass can run.
func (c *ScoutConfig) HasYouTubeCredentials() bool {
	return c.YouTubeAPIKey != ""
}

// HasTwitchCredentials reports whether the Twitch discovery pass can run.
func (c *ScoutConfig) HasTwitchCredentials() bool {
	return c.TwitchClientID != "" && c.TwitchClientSecret != ""
}
