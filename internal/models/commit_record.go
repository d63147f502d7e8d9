package models

import "strings"

// CommitRecord is one commit read from the log, most recent first
type CommitRecord struct {
	// Hash is the full commit hash
	Hash string
	// Subject is the first line of the commit message
	Subject string
	// Body is everything after the subject, possibly empty
	Body string
	// FullMessage is subject and body joined and trimmed
	FullMessage string
}

// NewCommitRecord creates a new CommitRecord
func NewCommitRecord(hash, subject, body string) CommitRecord {
	return CommitRecord{
		Hash:        hash,
		Subject:     subject,
		Body:        body,
		FullMessage: strings.TrimSpace(subject + "\n" + body),
	}
}

// ShortHash returns the first 8 characters of the hash
func (c CommitRecord) ShortHash() string {
	if len(c.Hash) <= 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// IsMerge reports whether the subject looks like a merge commit ("Merge ...")
func (c CommitRecord) IsMerge() bool {
	return strings.HasPrefix(c.Subject, "Merge ")
}

// IsAutomated reports whether the subject mentions "automated" in any case
func (c CommitRecord) IsAutomated() bool {
	return strings.Contains(strings.ToLower(c.Subject), "automated")
}
