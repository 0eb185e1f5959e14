package issues

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/wahlandcase/attuned.changelog/internal/models"
)

// PatternError reports an issue pattern that is not a valid regex
type PatternError struct {
	Name    string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid issue pattern %q (%s): %v", e.Name, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// groupBuilder accumulates commits for one group until the pass is done
type groupBuilder struct {
	group models.IssueGroup
	seq   int
}

// Classify groups commits by the first match of every pattern in their
// message. A commit matching several patterns is added once to each group it
// matches. Groups are keyed by the matched text, so two patterns matching the
// same text share a group. Commits matching nothing go to a single group
// named fallback.
//
// Groups are sorted by name, then issue (the fallback group first), then
// creation order. An invalid pattern aborts the pass with a *PatternError.
func Classify(commits []models.Commit, patterns []models.IssuePattern, fallback string) ([]models.IssueGroup, error) {
	compiled := make([]*regexp.Regexp, len(patterns))
	builders := make(map[string]*groupBuilder)
	var order []*groupBuilder
	var noIssue *groupBuilder

	for _, commit := range commits {
		added := make(map[string]bool)

		for i, p := range patterns {
			if compiled[i] == nil {
				re, err := regexp.Compile(p.Pattern)
				if err != nil {
					return nil, &PatternError{Name: p.Name, Pattern: p.Pattern, Err: err}
				}
				compiled[i] = re
			}

			match := compiled[i].FindStringSubmatch(commit.Message)
			if match == nil {
				continue
			}

			key := match[0]
			b, ok := builders[key]
			if !ok {
				b = &groupBuilder{
					group: models.IssueGroup{
						Name:  p.Name,
						Issue: &key,
						Link:  link(p, match),
					},
					seq: len(order),
				}
				builders[key] = b
				order = append(order, b)
			}
			if !added[key] {
				b.group.Commits = append(b.group.Commits, commit)
				added[key] = true
			}
		}

		if len(added) == 0 {
			if noIssue == nil {
				noIssue = &groupBuilder{
					group: models.IssueGroup{Name: fallback},
					seq:   len(order),
				}
				order = append(order, noIssue)
			}
			noIssue.group.Commits = append(noIssue.group.Commits, commit)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return less(order[i], order[j])
	})

	groups := make([]models.IssueGroup, 0, len(order))
	for _, b := range order {
		groups = append(groups, b.group)
	}
	return groups, nil
}

func link(p models.IssuePattern, match []string) *string {
	if p.Link == nil {
		return nil
	}
	l := RenderLink(*p.Link, match)
	return &l
}

// less orders by name, then issue with the fallback group first, then creation
func less(a, b *groupBuilder) bool {
	if a.group.Name != b.group.Name {
		return a.group.Name < b.group.Name
	}
	if a.group.HasIssue() != b.group.HasIssue() {
		return !a.group.HasIssue()
	}
	if a.group.IssueText() != b.group.IssueText() {
		return a.group.IssueText() < b.group.IssueText()
	}
	return a.seq < b.seq
}
