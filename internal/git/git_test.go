package git

import (
	"errors"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type testRepo struct {
	t    *testing.T
	repo *git.Repository
	fs   billy.Filesystem
	n    int
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	require.NoError(t, err)
	return &testRepo{t: t, repo: repo, fs: fs}
}

func (r *testRepo) signature() *object.Signature {
	return &object.Signature{
		Name:  "dev",
		Email: "dev@example.com",
		When:  epoch.Add(time.Duration(r.n) * time.Hour),
	}
}

func (r *testRepo) commit(message string, parents ...plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	r.n++

	f, err := r.fs.Create("CHANGES")
	require.NoError(r.t, err)
	_, err = f.Write([]byte(message))
	require.NoError(r.t, err)
	require.NoError(r.t, f.Close())

	wt, err := r.repo.Worktree()
	require.NoError(r.t, err)
	_, err = wt.Add("CHANGES")
	require.NoError(r.t, err)

	hash, err := wt.Commit(message, &git.CommitOptions{Author: r.signature(), Parents: parents})
	require.NoError(r.t, err)
	return hash
}

func (r *testRepo) tag(name string, hash plumbing.Hash) {
	r.t.Helper()
	_, err := r.repo.CreateTag(name, hash, nil)
	require.NoError(r.t, err)
}

func (r *testRepo) annotatedTag(name string, hash plumbing.Hash) {
	r.t.Helper()
	_, err := r.repo.CreateTag(name, hash, &git.CreateTagOptions{
		Tagger:  r.signature(),
		Message: "Release " + name,
	})
	require.NoError(r.t, err)
}

func TestTagHistory(t *testing.T) {
	r := newTestRepo(t)
	r.commit("initial")
	v1 := r.commit("ABC-1 first feature")
	r.commit("fix #2")
	v11 := r.commit("ABC-3 second feature")
	r.commit("work in progress")

	r.tag("v1.0.0", v1)
	r.annotatedTag("v1.1.0", v11)

	tags, err := TagHistory(r.repo, "Unreleased")
	require.NoError(t, err)
	require.Len(t, tags, 3)

	type summary struct {
		Name     string
		Subjects []string
	}
	var got []summary
	for _, tag := range tags {
		s := summary{Name: tag.Name}
		for _, c := range tag.Commits {
			s.Subjects = append(s.Subjects, c.Subject())
		}
		got = append(got, s)
	}

	assert.Equal(t, []summary{
		{Name: "Unreleased", Subjects: []string{"work in progress"}},
		{Name: "v1.1.0", Subjects: []string{"ABC-3 second feature", "fix #2"}},
		{Name: "v1.0.0", Subjects: []string{"ABC-1 first feature", "initial"}},
	}, got)

	c := tags[1].Commits[0]
	assert.Equal(t, v11.String(), c.Hash)
	assert.Equal(t, "dev", c.Author)
	assert.True(t, c.When.Equal(epoch.Add(4*time.Hour)))
}

func TestTagHistoryMergedBranch(t *testing.T) {
	r := newTestRepo(t)
	base := r.commit("base")
	feature := r.commit("feature branch")
	release := r.commit("release", base)
	r.tag("v1", release)
	r.commit("merge feature", release, feature)

	tags, err := TagHistory(r.repo, "Unreleased")
	require.NoError(t, err)
	require.Len(t, tags, 2)

	subjects := func(tag int) []string {
		var s []string
		for _, c := range tags[tag].Commits {
			s = append(s, c.Subject())
		}
		return s
	}

	assert.Equal(t, "Unreleased", tags[0].Name)
	assert.Equal(t, []string{"merge feature", "feature branch"}, subjects(0))
	assert.Equal(t, "v1", tags[1].Name)
	assert.Equal(t, []string{"release", "base"}, subjects(1))
}

func TestTagHistoryHeadTagged(t *testing.T) {
	r := newTestRepo(t)
	r.commit("one")
	head := r.commit("two")
	r.tag("v2", head)
	r.tag("release-2", head)

	tags, err := TagHistory(r.repo, "Unreleased")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "release-2", tags[0].Name)
	assert.Len(t, tags[0].Commits, 2)
}

func TestTagHistoryNoTags(t *testing.T) {
	r := newTestRepo(t)
	r.commit("one")
	r.commit("two")

	tags, err := TagHistory(r.repo, "Next")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Next", tags[0].Name)
	assert.Len(t, tags[0].Commits, 2)
}

func TestTagHistoryEmptyRepo(t *testing.T) {
	r := newTestRepo(t)

	_, err := TagHistory(r.repo, "Unreleased")
	var noCommits *NoCommitsError
	assert.True(t, errors.As(err, &noCommits))
}

func TestOriginURL(t *testing.T) {
	r := newTestRepo(t)

	url, err := OriginURL(r.repo)
	require.NoError(t, err)
	assert.Empty(t, url)

	_, err = r.repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:owner/repo.git", "https://github.com/owner/repo.git"},
	})
	require.NoError(t, err)

	url, err = OriginURL(r.repo)
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:owner/repo.git", url)
}

func TestOpenNotARepo(t *testing.T) {
	_, err := Open(t.TempDir())
	var gitErr *GitError
	require.True(t, errors.As(err, &gitErr))
	assert.False(t, IsGitRepo(t.TempDir()))
}
