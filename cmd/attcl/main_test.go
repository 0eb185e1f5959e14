package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wahlandcase/attuned.changelog/internal/config"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:owner/repo.git"},
	})
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("hi"), 0o644))
	_, err = wt.Add("README")
	require.NoError(t, err)
	hash, err := wt.Commit("PROJ-7 first release", &gogit.CommitOptions{Author: &object.Signature{
		Name:  "dev",
		Email: "dev@example.com",
		When:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.0.0", hash, nil)
	require.NoError(t, err)
	return dir
}

func writeConfig(t *testing.T) string {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Jira.Server = "https://jira.example.com"
	path := filepath.Join(t.TempDir(), "attcl.toml")
	require.NoError(t, cfg.Save(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "--repo", setupRepo(t), "--config", writeConfig(t))
	require.NoError(t, err)

	assert.Contains(t, out, "## v1.0.0")
	assert.Contains(t, out, "[PROJ-7](https://jira.example.com/browse/PROJ-7) Jira")
	assert.Contains(t, out, "https://github.com/owner/repo/commit/")
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	out, err := execute(t, "generate", "--repo", setupRepo(t), "--config", writeConfig(t), "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Changelog")
}

func TestOrigin(t *testing.T) {
	out, err := execute(t, "origin", "--repo", setupRepo(t))
	require.NoError(t, err)

	assert.Contains(t, out, "owner")
	assert.Contains(t, out, "https://api.github.com/repos/owner/repo")
}

func TestGenerateBadConfig(t *testing.T) {
	_, err := execute(t, "generate", "--repo", setupRepo(t), "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestGenerateOutputFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	_, err := execute(t, "generate", "--repo", setupRepo(t), "--config", writeConfig(t), "-o", "/dev/full")
	assert.Error(t, err)
}

func TestBrowseOutsideRepo(t *testing.T) {
	_, err := execute(t, "--repo", t.TempDir(), "--config", writeConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not inside a git repository")
}
