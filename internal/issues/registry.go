// Package issues groups commits by the issue references found in their messages.
package issues

import "github.com/wahlandcase/attuned.changelog/internal/models"

// JiraName is the name of the built-in Jira pattern
const JiraName = "Jira"

// Tracker configures the built-in Jira pattern
type Tracker struct {
	// Pattern is the issue key regex, empty disables the tracker
	Pattern string
	// Server is the Jira base URL, empty for no links
	Server string
}

// Patterns returns the custom patterns in configured order followed by the
// Jira pattern if one is configured. Regexes are compiled on first use.
func Patterns(custom []models.IssuePattern, jira Tracker) []models.IssuePattern {
	patterns := make([]models.IssuePattern, 0, len(custom)+1)
	patterns = append(patterns, custom...)

	if jira.Pattern == "" {
		return patterns
	}

	link := ""
	if jira.Server != "" {
		link = jira.Server + "/browse/" + placeholder
	}
	return append(patterns, models.NewIssuePattern(JiraName, jira.Pattern, link))
}
