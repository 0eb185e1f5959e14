package github

import (
	"fmt"
	"os/exec"
	"strings"
)

// CheckAuth verifies gh CLI is authenticated
func CheckAuth() error {
	cmd := exec.Command("gh", "auth", "status")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("not authenticated with GitHub CLI. Run 'gh auth login' first")
	}
	return nil
}

// editReleaseArgs builds the gh arguments that replace a release's notes
// with the text read from stdin
func editReleaseArgs(owner, repo, tag string) []string {
	return []string{"release", "edit", tag,
		"--repo", owner + "/" + repo,
		"--notes-file", "-",
	}
}

// SetReleaseNotes replaces the notes of the release for tag
func SetReleaseNotes(owner, repo, tag, notes string) error {
	if owner == "" || repo == "" {
		return fmt.Errorf("origin is not a GitHub repository")
	}

	cmd := exec.Command("gh", editReleaseArgs(owner, repo, tag)...)
	cmd.Stdin = strings.NewReader(notes)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gh release edit failed: %s", strings.TrimSpace(string(output)))
	}

	return nil
}
