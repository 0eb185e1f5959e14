package models

// RepoMetadata contains what can be derived from a repository's clone URL.
// Every field is nil when it cannot be derived.
type RepoMetadata struct {
	// Owner is the user or organisation (e.g., "wahlandcase")
	Owner *string
	// Repo is the repository name
	Repo *string
	// GitHubAPI is the GitHub API base (https://api.github.com/repos/owner/repo)
	GitHubAPI *string
	// GitLabServer is the GitLab server base
	GitLabServer *string
}

// IsGitHub returns true if the origin is hosted on GitHub
func (m RepoMetadata) IsGitHub() bool {
	return m.GitHubAPI != nil
}

// IsGitLab returns true if the origin is hosted on GitLab
func (m RepoMetadata) IsGitLab() bool {
	return m.GitLabServer != nil
}

// OwnerName returns the owner or an empty string
func (m RepoMetadata) OwnerName() string {
	return deref(m.Owner)
}

// RepoName returns the repository name or an empty string
func (m RepoMetadata) RepoName() string {
	return deref(m.Repo)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
