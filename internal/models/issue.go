package models

// IssuePattern names a regular expression that finds issue references in
// commit messages
type IssuePattern struct {
	// Name of the pattern (e.g., "GitHub", "Jira")
	Name string
	// Pattern is the regular expression source
	Pattern string
	// Link template with ${PATTERN_GROUP} placeholders, nil for no link
	Link *string
}

// NewIssuePattern creates a new IssuePattern. An empty link means no link.
func NewIssuePattern(name, pattern, link string) IssuePattern {
	p := IssuePattern{Name: name, Pattern: pattern}
	if link != "" {
		p.Link = &link
	}
	return p
}

// IssueGroup holds the commits that reference one issue
type IssueGroup struct {
	// Name of the pattern that created the group, or the fallback label
	Name string
	// Issue is the matched text (e.g., "ABC-123"), nil for the fallback group
	Issue *string
	// Link to the issue, nil if the pattern has no link template
	Link *string
	// Commits referencing the issue, in classification order
	Commits []Commit
}

// HasIssue returns true unless this is the fallback group
func (g IssueGroup) HasIssue() bool {
	return g.Issue != nil
}

// IssueText returns the matched text or an empty string
func (g IssueGroup) IssueText() string {
	if g.Issue == nil {
		return ""
	}
	return *g.Issue
}

// LinkText returns the link or an empty string
func (g IssueGroup) LinkText() string {
	if g.Link == nil {
		return ""
	}
	return *g.Link
}
