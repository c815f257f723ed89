package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"outreach-stack/internal/models"
)

// KeyLedger manages the persistent mapping of recipient addresses to
// assigned product keys. Entries are created once, updated when marked
// sent or responded, never deleted, so re-runs and follow-ups can
// resume from prior state.
type KeyLedger struct {
	filePath    string
	assignments map[string]*models.KeyAssignment
	mu          sync.RWMutex
}

// NewKeyLedger loads the ledger from disk. A missing file starts an
// empty ledger; that is the normal first-run state.
func NewKeyLedger(filePath string) (*KeyLedger, error) {
	ledger := &KeyLedger{
		filePath:    filePath,
		assignments: make(map[string]*models.KeyAssignment),
	}

	if err := ledger.load(); err != nil {
		return nil, fmt.Errorf("failed to load key ledger: %w", err)
	}

	return ledger, nil
}

// Count returns the number of persisted assignments; it doubles as the
// offset into the key pool for the next unassigned key.
func (kl *KeyLedger) Count() int {
	kl.mu.RLock()
	defer kl.mu.RUnlock()
	return len(kl.assignments)
}

// Has reports whether the address already holds a key.
func (kl *KeyLedger) Has(email string) bool {
	kl.mu.RLock()
	defer kl.mu.RUnlock()
	_, ok := kl.assignments[email]
	return ok
}

// Get returns the assignment for an address, or nil.
func (kl *KeyLedger) Get(email string) *models.KeyAssignment {
	kl.mu.RLock()
	defer kl.mu.RUnlock()
	return kl.assignments[email]
}

// Assign records a new key assignment in memory. Call Save to persist.
func (kl *KeyLedger) Assign(email string, assignment *models.KeyAssignment) {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	kl.assignments[email] = assignment
}

// MarkDraftCreated flags an assignment whose Gmail draft was created.
func (kl *KeyLedger) MarkDraftCreated(email string) {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	if a, ok := kl.assignments[email]; ok {
		a.DraftCreated = true
	}
}

// MarkSent sets the sent flag and timestamp for each address present
// in the ledger. Unknown addresses are ignored. Returns the number of
// entries updated.
func (kl *KeyLedger) MarkSent(addresses []string, now time.Time) int {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	updated := 0
	for _, email := range addresses {
		if a, ok := kl.assignments[email]; ok {
			a.Sent = true
			sentAt := now
			a.SentDate = &sentAt
			updated++
		}
	}
	return updated
}

// FollowUpCandidate pairs an address with its ledger entry for
// follow-up composition.
type FollowUpCandidate struct {
	Email      string
	Assignment *models.KeyAssignment
}

// FollowUpCandidates returns every entry that was sent at least
// daysSince days ago and has not been marked responded.
func (kl *KeyLedger) FollowUpCandidates(daysSince int, now time.Time) []FollowUpCandidate {
	kl.mu.RLock()
	defer kl.mu.RUnlock()

	var candidates []FollowUpCandidate
	for email, a := range kl.assignments {
		if !a.Sent || a.Responded || a.SentDate == nil {
			continue
		}
		if int(now.Sub(*a.SentDate).Hours()/24) >= daysSince {
			candidates = append(candidates, FollowUpCandidate{Email: email, Assignment: a})
		}
	}
	return candidates
}

// UnsentCount returns how many assigned keys have not been sent yet.
func (kl *KeyLedger) UnsentCount() int {
	kl.mu.RLock()
	defer kl.mu.RUnlock()

	count := 0
	for _, a := range kl.assignments {
		if !a.Sent {
			count++
		}
	}
	return count
}

// Save writes the full ledger to disk, pretty-printed. Persistence is
// whole-file overwrite; callers must serialize writers.
func (kl *KeyLedger) Save() error {
	kl.mu.RLock()
	defer kl.mu.RUnlock()

	file, err := os.Create(kl.filePath)
	if err != nil {
		return fmt.Errorf("failed to create ledger file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(kl.assignments); err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	return nil
}

func (kl *KeyLedger) load() error {
	file, err := os.Open(kl.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// First run, nothing assigned yet
			return nil
		}
		return fmt.Errorf("failed to open ledger file: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&kl.assignments); err != nil {
		return fmt.Errorf("failed to decode ledger data: %w", err)
	}
	return nil
}
