package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	keycampaign "outreach-stack/agents/key-campaign"
	"outreach-stack/shared/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	csvFile := flag.String("csv", cfg.Campaign.CSVFile, "CSV file with influencer data")
	keyFile := flag.String("keys", cfg.Campaign.KeyFile, "File containing Steam keys (one per line or CSV)")
	maxDrafts := flag.Int("max", 0, "Maximum number of drafts to create (0 = no limit)")
	noGmail := flag.Bool("no-gmail", false, "Generate text file instead of Gmail drafts")
	followup := flag.Bool("followup", false, "Generate follow-up emails for non-responders")
	markSent := flag.String("mark-sent", "", "Comma-separated addresses to mark as sent")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	agent := keycampaign.NewCampaignAgent(&cfg.Campaign)

	switch {
	case *markSent != "":
		var addresses []string
		for _, addr := range strings.Split(*markSent, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				addresses = append(addresses, addr)
			}
		}
		if err := agent.MarkSent(addresses); err != nil {
			log.Fatalf("Failed to mark addresses as sent: %v", err)
		}

	case *followup:
		created, err := agent.GenerateFollowUps(ctx, cfg.Campaign.FollowUpDays, !*noGmail)
		if err != nil {
			log.Fatalf("Failed to generate follow-ups: %v", err)
		}
		log.Printf("Generated %d follow-up drafts", created)

	default:
		if _, err := agent.GenerateCampaign(ctx, keycampaign.CampaignOptions{
			CSVFile:     *csvFile,
			KeyFile:     *keyFile,
			MaxDrafts:   *maxDrafts,
			GmailDrafts: !*noGmail,
		}); err != nil {
			log.Fatalf("Campaign failed: %v", err)
		}
	}
}
