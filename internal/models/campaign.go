package models

import "time"

// KeyAssignment records which product key went to which recipient.
// Entries are created once, updated when marked sent or responded,
// and never deleted.
type KeyAssignment struct {
	Key          string     `json:"key"`
	Influencer   string     `json:"influencer"`
	Platform     string     `json:"platform"`
	Followers    int64      `json:"followers"`
	AssignedDate time.Time  `json:"assigned_date"`
	Sent         bool       `json:"sent"`
	SentDate     *time.Time `json:"sent_date,omitempty"`
	Responded    bool       `json:"responded,omitempty"`
	DraftCreated bool       `json:"draft_created,omitempty"`
}

// EmailContent is a fully composed outreach message ready for the
// mail-draft collaborator or the text-file fallback.
type EmailContent struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
