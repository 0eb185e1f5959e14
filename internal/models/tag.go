package models

import "sort"

// Tag is a tag name plus the commits that belong to it
type Tag struct {
	// Name of the tag, or the untagged name for commits after the newest tag
	Name string
	// Commits in history order (newest first)
	Commits []Commit
}

// MergeTagCommits returns the commits of all tags without duplicates,
// ordered newest first with the hash as tie-break
func MergeTagCommits(tags []Tag) []Commit {
	seen := make(map[string]bool)
	var commits []Commit
	for _, tag := range tags {
		for _, c := range tag.Commits {
			if seen[c.Hash] {
				continue
			}
			seen[c.Hash] = true
			commits = append(commits, c)
		}
	}

	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Before(commits[j])
	})

	return commits
}
