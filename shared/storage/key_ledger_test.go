package storage

import (
	"path/filepath"
	"testing"
	"time"

	"outreach-stack/internal/models"
)

func newTestLedger(t *testing.T) *KeyLedger {
	t.Helper()
	ledger, err := NewKeyLedger(filepath.Join(t.TempDir(), "key_assignments.json"))
	if err != nil {
		t.Fatalf("NewKeyLedger() error: %v", err)
	}
	return ledger
}

func TestKeyLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key_assignments.json")

	ledger, err := NewKeyLedger(path)
	if err != nil {
		t.Fatalf("NewKeyLedger() error: %v", err)
	}
	if ledger.Count() != 0 {
		t.Fatalf("fresh ledger count = %d, want 0", ledger.Count())
	}

	assigned := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	ledger.Assign("a@creator.tv", &models.KeyAssignment{
		Key:          "AAAAA-BBBBB-CCCCC",
		Influencer:   "CreatorA",
		Platform:     "YouTube",
		Followers:    12000,
		AssignedDate: assigned,
	})
	ledger.Assign("b@creator.tv", &models.KeyAssignment{
		Key:          "DDDDD-EEEEE-FFFFF",
		Influencer:   "CreatorB",
		Platform:     "Twitch",
		Followers:    3000,
		AssignedDate: assigned,
	})
	if err := ledger.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded, err := NewKeyLedger(path)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if reloaded.Count() != 2 {
		t.Fatalf("reloaded count = %d, want 2", reloaded.Count())
	}

	a := reloaded.Get("a@creator.tv")
	if a == nil {
		t.Fatal("assignment for a@creator.tv missing after reload")
	}
	if a.Key != "AAAAA-BBBBB-CCCCC" || a.Influencer != "CreatorA" || a.Followers != 12000 {
		t.Errorf("reloaded assignment = %+v", a)
	}
	if a.Sent {
		t.Error("sent flag should be false after round-trip")
	}
	if !a.AssignedDate.Equal(assigned) {
		t.Errorf("assigned date = %v, want %v", a.AssignedDate, assigned)
	}
}

func TestKeyLedgerResumeOffset(t *testing.T) {
	// The next-key index is the count of persisted assignments, so a
	// resumed run never re-issues an already assigned key.
	path := filepath.Join(t.TempDir(), "key_assignments.json")
	pool := []string{"KEY-ONE-11111", "KEY-TWO-22222", "KEY-THREE-3333"}

	ledger, err := NewKeyLedger(path)
	if err != nil {
		t.Fatalf("NewKeyLedger() error: %v", err)
	}
	ledger.Assign("first@x.tv", &models.KeyAssignment{Key: pool[ledger.Count()]})
	if err := ledger.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	resumed, err := NewKeyLedger(path)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	next := pool[resumed.Count()]
	if next != "KEY-TWO-22222" {
		t.Errorf("next key after resume = %q, want KEY-TWO-22222", next)
	}
	if resumed.Has("second@x.tv") {
		t.Error("unexpected assignment for second@x.tv")
	}
	if !resumed.Has("first@x.tv") {
		t.Error("first@x.tv assignment lost across restart")
	}
}

func TestKeyLedgerMarkSent(t *testing.T) {
	ledger := newTestLedger(t)
	ledger.Assign("a@x.tv", &models.KeyAssignment{Key: "AAAAA-BBBBB-CCCCC"})

	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	updated := ledger.MarkSent([]string{"a@x.tv", "missing@x.tv"}, now)
	if updated != 1 {
		t.Errorf("MarkSent updated %d entries, want 1", updated)
	}

	a := ledger.Get("a@x.tv")
	if !a.Sent || a.SentDate == nil || !a.SentDate.Equal(now) {
		t.Errorf("assignment after MarkSent = %+v", a)
	}
}

func TestKeyLedgerFollowUpCandidates(t *testing.T) {
	ledger := newTestLedger(t)
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	sentLongAgo := now.AddDate(0, 0, -10)
	sentRecently := now.AddDate(0, 0, -2)

	ledger.Assign("stale@x.tv", &models.KeyAssignment{
		Key: "AAAAA-BBBBB-11111", Influencer: "Stale", Sent: true, SentDate: &sentLongAgo,
	})
	ledger.Assign("fresh@x.tv", &models.KeyAssignment{
		Key: "AAAAA-BBBBB-22222", Influencer: "Fresh", Sent: true, SentDate: &sentRecently,
	})
	ledger.Assign("replied@x.tv", &models.KeyAssignment{
		Key: "AAAAA-BBBBB-33333", Influencer: "Replied", Sent: true, SentDate: &sentLongAgo, Responded: true,
	})
	ledger.Assign("unsent@x.tv", &models.KeyAssignment{
		Key: "AAAAA-BBBBB-44444", Influencer: "Unsent",
	})

	candidates := ledger.FollowUpCandidates(7, now)
	if len(candidates) != 1 {
		t.Fatalf("FollowUpCandidates = %d entries, want 1", len(candidates))
	}
	if candidates[0].Email != "stale@x.tv" {
		t.Errorf("candidate = %q, want stale@x.tv", candidates[0].Email)
	}
}

func TestKeyLedgerUnsentCount(t *testing.T) {
	ledger := newTestLedger(t)
	sent := time.Now()
	ledger.Assign("a@x.tv", &models.KeyAssignment{Key: "AAAAA-BBBBB-11111", Sent: true, SentDate: &sent})
	ledger.Assign("b@x.tv", &models.KeyAssignment{Key: "AAAAA-BBBBB-22222"})
	ledger.Assign("c@x.tv", &models.KeyAssignment{Key: "AAAAA-BBBBB-33333"})

	if got := ledger.UnsentCount(); got != 2 {
		t.Errorf("UnsentCount() = %d, want 2", got)
	}
}
