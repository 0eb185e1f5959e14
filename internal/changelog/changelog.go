// Package changelog assembles tags, issue groups and origin metadata into the
// data rendered as a changelog.
package changelog

import (
	"regexp"

	"github.com/wahlandcase/attuned.changelog/internal/config"
	"github.com/wahlandcase/attuned.changelog/internal/issues"
	"github.com/wahlandcase/attuned.changelog/internal/models"
	"github.com/wahlandcase/attuned.changelog/internal/remote"
)

// TagSection is one tag with its commits grouped by issue
type TagSection struct {
	Name    string
	Commits []models.Commit
	Issues  []models.IssueGroup
}

// Changelog is everything a template needs
type Changelog struct {
	OriginURL string
	Repo      models.RepoMetadata
	Tags      []TagSection
	Commits   []models.Commit
	Issues    []models.IssueGroup
}

// Build filters ignored commits, classifies the merged history and every tag,
// and resolves the origin URL
func Build(cfg *config.Config, originURL string, tags []models.Tag) (*Changelog, error) {
	patterns := cfg.IssuePatterns()

	kept := make([]models.Tag, 0, len(tags))
	for _, tag := range tags {
		kept = append(kept, models.Tag{
			Name:    tag.Name,
			Commits: filterIgnored(tag.Commits, cfg.IgnoreRegex()),
		})
	}

	commits := models.MergeTagCommits(kept)
	all, err := issues.Classify(commits, patterns, cfg.FallbackLabel)
	if err != nil {
		return nil, err
	}

	sections := make([]TagSection, 0, len(kept))
	for _, tag := range kept {
		if len(tag.Commits) == 0 {
			continue
		}
		groups, err := issues.Classify(tag.Commits, patterns, cfg.FallbackLabel)
		if err != nil {
			return nil, err
		}
		sections = append(sections, TagSection{
			Name:    tag.Name,
			Commits: tag.Commits,
			Issues:  groups,
		})
	}

	return &Changelog{
		OriginURL: originURL,
		Repo:      remote.Resolve(originURL),
		Tags:      sections,
		Commits:   commits,
		Issues:    all,
	}, nil
}

func filterIgnored(commits []models.Commit, ignore *regexp.Regexp) []models.Commit {
	if ignore == nil {
		return commits
	}
	var kept []models.Commit
	for _, c := range commits {
		if !ignore.MatchString(c.Message) {
			kept = append(kept, c)
		}
	}
	return kept
}

// CommitURL returns a web link to the commit on GitHub or GitLab, or "" when
// the origin is on neither
func (c *Changelog) CommitURL(hash string) string {
	owner, repo := c.Repo.OwnerName(), c.Repo.RepoName()
	if owner == "" || repo == "" {
		return ""
	}
	switch {
	case c.Repo.IsGitHub():
		return "https://github.com/" + owner + "/" + repo + "/commit/" + hash
	case c.Repo.IsGitLab():
		return *c.Repo.GitLabServer + owner + "/" + repo + "/-/commit/" + hash
	}
	return ""
}

// ForTag returns a copy of the changelog with only the named tag, or nil if
// the tag has no section
func (c *Changelog) ForTag(name string) *Changelog {
	for _, tag := range c.Tags {
		if tag.Name != name {
			continue
		}
		out := *c
		out.Tags = []TagSection{tag}
		out.Commits = tag.Commits
		out.Issues = tag.Issues
		return &out
	}
	return nil
}
