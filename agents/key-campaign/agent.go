// Package keycampaign distributes Steam keys to discovered creators.
// It consumes the priority CSV from the scout agent, assigns one key
// per recipient from a persistent ledger and produces personalized
// Gmail drafts, with a plain-text fallback when Gmail is unavailable.
package keycampaign

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"outreach-stack/agents/key-campaign/compose"
	"outreach-stack/agents/key-campaign/gmail"
	"outreach-stack/internal/models"
	"outreach-stack/shared/config"
	"outreach-stack/shared/export"
	"outreach-stack/shared/storage"
)

// CampaignOptions are the per-invocation knobs on top of the static
// campaign config.
type CampaignOptions struct {
	CSVFile     string
	KeyFile     string
	MaxDrafts   int // 0 means no limit
	GmailDrafts bool
}

// CampaignResult summarizes what one campaign run produced.
type CampaignResult struct {
	DraftsCreated   int
	EmailsGenerated int
	KeysAssigned    int
	KeysRemaining   int
}

type CampaignAgent struct {
	config   *config.CampaignConfig
	composer *compose.Composer

	// Injected in tests; built lazily in production
	gmailClient DraftCreator
}

// DraftCreator is the slice of the Gmail client the campaign needs.
type DraftCreator interface {
	CreateDraft(ctx context.Context, email models.EmailContent) error
}

func NewCampaignAgent(cfg *config.CampaignConfig) *CampaignAgent {
	return &CampaignAgent{
		config:   cfg,
		composer: compose.New(cfg),
	}
}

// GenerateCampaign runs the full distribution flow: load recipients,
// load keys, assign, compose, draft or dump to file, persist.
func (a *CampaignAgent) GenerateCampaign(ctx context.Context, opts CampaignOptions) (*CampaignResult, error) {
	log.Println(strings.Repeat("=", 70))
	log.Printf("STEAM KEY DISTRIBUTION CAMPAIGN: %s", a.config.GameName)
	log.Println(strings.Repeat("=", 70))

	log.Printf("[1/5] Loading influencers from %s...", opts.CSVFile)
	influencers, err := export.ReadCSV(opts.CSVFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load influencers: %w", err)
	}
	log.Printf("Loaded %d influencers", len(influencers))

	valid := filterWithEmail(influencers)
	log.Printf("%d have valid email addresses", len(valid))

	log.Printf("[2/5] Loading Steam keys from %s...", opts.KeyFile)
	steamKeys, err := storage.LoadSteamKeys(opts.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load Steam keys: %w", err)
	}
	if len(steamKeys) == 0 {
		return nil, fmt.Errorf("no Steam keys found in %s", opts.KeyFile)
	}
	log.Printf("Loaded %d Steam keys", len(steamKeys))

	ledger, err := storage.NewKeyLedger(a.config.AssignmentsFile)
	if err != nil {
		return nil, err
	}

	// Drop recipients who already hold a key before sizing the batch,
	// so a resumed run spends the remaining keys on new recipients
	// instead of burning the window on skips
	var pending []*models.Influencer
	for _, inf := range valid {
		if ledger.Has(inf.PrimaryEmail()) {
			log.Printf("Skipping %s - already assigned key", inf.Username)
			continue
		}
		pending = append(pending, inf)
	}

	keysNeeded := len(pending)
	if opts.MaxDrafts > 0 && opts.MaxDrafts < keysNeeded {
		keysNeeded = opts.MaxDrafts
	}
	keysAvailable := len(steamKeys) - ledger.Count()
	if keysAvailable < keysNeeded {
		log.Printf("Warning: only %d keys available, but %d needed (%d already assigned)",
			keysAvailable, keysNeeded, ledger.Count())
		keysNeeded = keysAvailable
	}
	if keysNeeded < 0 {
		keysNeeded = 0
	}
	log.Printf("Will create %d drafts", keysNeeded)

	if keysNeeded < len(pending) {
		pending = pending[:keysNeeded]
	}

	gmailDrafts := opts.GmailDrafts
	if gmailDrafts && a.gmailClient == nil {
		log.Println("[3/5] Connecting to Gmail API...")
		client, err := gmail.NewClient(a.config)
		if err != nil {
			log.Printf("Warning: Gmail API not available (%v), generating email files instead", err)
			gmailDrafts = false
		} else {
			a.gmailClient = client
		}
	}

	log.Println("[4/5] Generating personalized emails...")

	result := &CampaignResult{}
	var fileDrafts []fileDraft
	keyIndex := ledger.Count()

	for i, inf := range pending {
		email := inf.PrimaryEmail()

		// Guards against the same address appearing twice in the CSV
		if ledger.Has(email) {
			log.Printf("Skipping %s - already assigned key", inf.Username)
			continue
		}
		if keyIndex >= len(steamKeys) {
			log.Println("Warning: key pool exhausted, stopping")
			break
		}

		steamKey := steamKeys[keyIndex]
		keyIndex++

		content := a.composer.Outreach(inf, email, steamKey)

		ledger.Assign(email, &models.KeyAssignment{
			Key:          steamKey,
			Influencer:   inf.Username,
			Platform:     string(inf.Platform),
			Followers:    inf.Followers,
			AssignedDate: time.Now(),
		})
		result.KeysAssigned++

		log.Printf("[%d/%d] %s (%s)", i+1, keysNeeded, inf.Username, email)

		if gmailDrafts {
			if err := a.gmailClient.CreateDraft(ctx, content); err != nil {
				log.Printf("Error creating draft for %s: %v", inf.Username, err)
				continue
			}
			log.Printf("Draft created for %s", inf.Username)
			result.DraftsCreated++
			ledger.MarkDraftCreated(email)
		} else {
			fileDrafts = append(fileDrafts, fileDraft{
				influencer: inf.Username,
				email:      email,
				steamKey:   steamKey,
				content:    content,
			})
		}
	}

	log.Println("[5/5] Saving key assignments...")
	if err := ledger.Save(); err != nil {
		return nil, err
	}
	log.Printf("Key assignments saved to %s", a.config.AssignmentsFile)

	if !gmailDrafts && len(fileDrafts) > 0 {
		if err := writeDraftsFile(a.config.DraftsFile, fileDrafts); err != nil {
			return nil, err
		}
		result.EmailsGenerated = len(fileDrafts)
		log.Printf("Email drafts saved to %s", a.config.DraftsFile)
	}

	result.KeysRemaining = len(steamKeys) - ledger.Count()

	log.Println(strings.Repeat("=", 70))
	log.Println("CAMPAIGN SUMMARY")
	log.Println(strings.Repeat("=", 70))
	if gmailDrafts {
		log.Printf("Gmail drafts created: %d - review them in your drafts folder before sending", result.DraftsCreated)
	} else {
		log.Printf("Email drafts generated: %d in %s", result.EmailsGenerated, a.config.DraftsFile)
	}
	log.Printf("Steam keys assigned (unsent): %d", ledger.UnsentCount())
	log.Printf("Keys remaining: %d", result.KeysRemaining)
	log.Printf("Track assignments in: %s", a.config.AssignmentsFile)

	return result, nil
}

// MarkSent flags addresses whose drafts were manually sent.
func (a *CampaignAgent) MarkSent(addresses []string) error {
	ledger, err := storage.NewKeyLedger(a.config.AssignmentsFile)
	if err != nil {
		return err
	}

	updated := ledger.MarkSent(addresses, time.Now())
	if err := ledger.Save(); err != nil {
		return err
	}

	log.Printf("Marked %d of %d addresses as sent", updated, len(addresses))
	return nil
}

// GenerateFollowUps composes reminder drafts for everyone who received
// a key at least daysSince days ago and has not responded.
func (a *CampaignAgent) GenerateFollowUps(ctx context.Context, daysSince int, gmailDrafts bool) (int, error) {
	log.Println(strings.Repeat("=", 70))
	log.Println("GENERATING FOLLOW-UP EMAILS")
	log.Println(strings.Repeat("=", 70))

	ledger, err := storage.NewKeyLedger(a.config.AssignmentsFile)
	if err != nil {
		return 0, err
	}

	candidates := ledger.FollowUpCandidates(daysSince, time.Now())
	log.Printf("Found %d influencers needing follow-up", len(candidates))
	if len(candidates) == 0 {
		return 0, nil
	}

	if gmailDrafts && a.gmailClient == nil {
		client, err := gmail.NewClient(a.config)
		if err != nil {
			log.Printf("Warning: Gmail API not available (%v), generating email files instead", err)
			gmailDrafts = false
		} else {
			a.gmailClient = client
		}
	}

	created := 0
	var fileDrafts []fileDraft
	for _, candidate := range candidates {
		content := a.composer.FollowUp(candidate.Assignment.Influencer, candidate.Email, candidate.Assignment.Key)

		if gmailDrafts {
			if err := a.gmailClient.CreateDraft(ctx, content); err != nil {
				log.Printf("Error creating follow-up draft for %s: %v", candidate.Email, err)
				continue
			}
			created++
		} else {
			fileDrafts = append(fileDrafts, fileDraft{
				influencer: candidate.Assignment.Influencer,
				email:      candidate.Email,
				steamKey:   candidate.Assignment.Key,
				content:    content,
			})
		}
	}

	// Follow-ups go to their own file so a prior outreach dump is
	// not truncated
	if !gmailDrafts && len(fileDrafts) > 0 {
		if err := writeDraftsFile(a.config.FollowUpDraftsFile, fileDrafts); err != nil {
			return 0, err
		}
		created = len(fileDrafts)
		log.Printf("Follow-up drafts saved to %s", a.config.FollowUpDraftsFile)
	}

	return created, nil
}

func filterWithEmail(influencers []*models.Influencer) []*models.Influencer {
	var valid []*models.Influencer
	for _, inf := range influencers {
		email := inf.PrimaryEmail()
		if email != "" && strings.Contains(email, "@") {
			valid = append(valid, inf)
		}
	}
	return valid
}

// fileDraft is one composed email queued for the text-file fallback.
type fileDraft struct {
	influencer string
	email      string
	steamKey   string
	content    models.EmailContent
}

// writeDraftsFile dumps composed emails in a delimited plain-text
// format for manual copy-paste into any mail client.
func writeDraftsFile(path string, drafts []fileDraft) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create drafts file: %w", err)
	}
	defer file.Close()

	for _, draft := range drafts {
		fmt.Fprintln(file, strings.Repeat("=", 70))
		fmt.Fprintf(file, "TO: %s\n", draft.email)
		fmt.Fprintf(file, "INFLUENCER: %s\n", draft.influencer)
		fmt.Fprintf(file, "STEAM KEY: %s\n", draft.steamKey)
		fmt.Fprintln(file, strings.Repeat("-", 70))
		fmt.Fprintf(file, "SUBJECT: %s\n", draft.content.Subject)
		fmt.Fprintln(file, strings.Repeat("-", 70))
		fmt.Fprintf(file, "%s\n\n\n", draft.content.Body)
	}

	return nil
}
