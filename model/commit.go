package model

import (
	"strings"
	"time"
)

// Commit is a commit as read from version control. Message is the full,
// unprocessed commit message.
type Commit struct {
	ID             string `json:"commit"`
	Author         string
	AuthorEmail    string
	AuthorDate     time.Time
	Committer      string
	CommitterEmail string
	CommitterDate  time.Time
	Message        string
}

func (c *Commit) ShortID() string {
	if len(c.ID) < 8 {
		return c.ID
	}
	return c.ID[:8]
}

// Title returns the first line of the message.
func (c *Commit) Title() string {
	title, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return strings.TrimSpace(title)
}
