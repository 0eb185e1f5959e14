// Package remote derives hosting metadata from a repository clone URL.
package remote

import (
	"regexp"
	"strings"

	"github.com/wahlandcase/attuned.changelog/internal/models"
)

const (
	gitHubHost   = "github.com"
	gitLabHost   = "gitlab.com"
	gitHubAPI    = "https://api.github.com/repos/"
	gitLabServer = "https://gitlab.com/"
)

var delimiterRegex = regexp.MustCompile(`[/:]`)

// Resolve returns the owner, repository name and provider base URLs of a
// clone URL such as git@github.com:owner/repo.git. An empty URL resolves to
// empty metadata.
//
// The GitLab server is always gitlab.com; self-hosted GitLab is not detected.
func Resolve(originURL string) models.RepoMetadata {
	var meta models.RepoMetadata
	if originURL == "" {
		return meta
	}

	normalized := strings.TrimSuffix(originURL, ".git")
	parts := Parts(normalized)

	if len(parts) >= 1 {
		repo := parts[len(parts)-1]
		meta.Repo = &repo
	}
	if len(parts) >= 2 {
		owner := parts[len(parts)-2]
		meta.Owner = &owner
	}

	if strings.Contains(normalized, gitHubHost) && meta.Owner != nil && meta.Repo != nil {
		api := gitHubAPI + *meta.Owner + "/" + *meta.Repo
		meta.GitHubAPI = &api
	}
	if strings.Contains(normalized, gitLabHost) {
		server := gitLabServer
		meta.GitLabServer = &server
	}

	return meta
}

// Parts splits a URL on '/' and ':' and drops empty parts
func Parts(url string) []string {
	var parts []string
	for _, p := range delimiterRegex.Split(url, -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
