package models

import (
	"strings"
	"time"
)

// Commit contains information about a git commit
type Commit struct {
	// Hash is the full commit hash
	Hash string
	// Author is the author name
	Author string
	// When is the committer time
	When time.Time
	// Message is the full commit message
	Message string
}

// NewCommit creates a new Commit
func NewCommit(hash, author string, when time.Time, message string) Commit {
	return Commit{
		Hash:    hash,
		Author:  author,
		When:    when,
		Message: message,
	}
}

// ShortHash returns the first 7 characters of the hash
func (c Commit) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// Subject returns the first line of the message
func (c Commit) Subject() string {
	return strings.TrimSpace(strings.SplitN(c.Message, "\n", 2)[0])
}

// Before reports whether c sorts before o: newest first, then by hash
func (c Commit) Before(o Commit) bool {
	if !c.When.Equal(o.When) {
		return c.When.After(o.When)
	}
	return c.Hash < o.Hash
}
