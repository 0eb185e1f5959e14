package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

const originRemote = "origin"

// Open opens the repository containing path, walking up to find .git
func Open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &GitError{Op: "open " + path, Err: err}
	}
	return repo, nil
}

// IsGitRepo checks if the path is inside a git repository
func IsGitRepo(path string) bool {
	_, err := Open(path)
	return err == nil
}

// OriginURL returns the first URL of the origin remote, or "" if there is none
func OriginURL(repo *git.Repository) (string, error) {
	remote, err := repo.Remote(originRemote)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return "", nil
	}
	if err != nil {
		return "", &GitError{Op: "remote " + originRemote, Err: err}
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

// GitError provides context for failed repository operations
type GitError struct {
	Op  string
	Err error
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git %s: %v", e.Op, e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// NoCommitsError indicates a repository without any commit on HEAD
type NoCommitsError struct {
	Path string
}

func (e *NoCommitsError) Error() string {
	if e.Path == "" {
		return "repository has no commits"
	}
	return "repository has no commits: " + e.Path
}
