package git

import (
	"errors"
	"sort"

	"github.com/wahlandcase/attuned.changelog/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TagHistory lists the commits of every tag reachable from HEAD. A tag holds
// the commits reachable from its commit that no older tag reaches, so commits
// merged in after a release stay out of it. Commits reachable only from HEAD
// go to a tag named untaggedName, which is left out when it has no commits.
// Tags are returned newest first. A commit with several tags is listed under
// the first tag name in sort order.
func TagHistory(repo *git.Repository, untaggedName string) ([]models.Tag, error) {
	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, &NoCommitsError{}
	}
	if err != nil {
		return nil, &GitError{Op: "resolve HEAD", Err: err}
	}

	tagNames, err := commitTags(repo)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, &GitError{Op: "log", Err: err}
	}

	// Newest first
	var tagged []*object.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if _, ok := tagNames[c.Hash]; ok {
			tagged = append(tagged, c)
		}
		return nil
	})
	if err != nil {
		return nil, &GitError{Op: "log", Err: err}
	}

	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, &GitError{Op: "resolve HEAD", Err: err}
	}

	seen := make(map[plumbing.Hash]bool)
	tags := make([]models.Tag, 0, len(tagged)+1)
	for i := len(tagged) - 1; i >= 0; i-- {
		commits, err := reachable(tagged[i], seen)
		if err != nil {
			return nil, err
		}
		tags = append(tags, models.Tag{Name: tagNames[tagged[i].Hash][0], Commits: commits})
	}

	untagged, err := reachable(headCommit, seen)
	if err != nil {
		return nil, err
	}
	if len(untagged) > 0 {
		tags = append(tags, models.Tag{Name: untaggedName, Commits: untagged})
	}

	for i, j := 0, len(tags)-1; i < j; i, j = i+1, j-1 {
		tags[i], tags[j] = tags[j], tags[i]
	}
	return tags, nil
}

// reachable collects the commits reachable from start that are not in seen,
// marking them as seen. The walk stops at seen commits.
func reachable(start *object.Commit, seen map[plumbing.Hash]bool) ([]models.Commit, error) {
	var commits []models.Commit
	stack := []*object.Commit{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[c.Hash] {
			continue
		}
		seen[c.Hash] = true
		commits = append(commits, toCommit(c))

		err := c.Parents().ForEach(func(p *object.Commit) error {
			if !seen[p.Hash] {
				stack = append(stack, p)
			}
			return nil
		})
		if err != nil {
			return nil, &GitError{Op: "parents of " + c.Hash.String(), Err: err}
		}
	}

	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Before(commits[j])
	})
	return commits, nil
}

// commitTags maps commit hashes to the tags pointing at them, sorted by name.
// Annotated tags are peeled to their commit.
func commitTags(repo *git.Repository) (map[plumbing.Hash][]string, error) {
	refs, err := repo.Tags()
	if err != nil {
		return nil, &GitError{Op: "list tags", Err: err}
	}

	tagNames := make(map[plumbing.Hash][]string)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()
		if tag, err := repo.TagObject(hash); err == nil {
			commit, err := tag.Commit()
			if err != nil {
				// Tags of trees or blobs have no place in history
				return nil
			}
			hash = commit.Hash
		}
		tagNames[hash] = append(tagNames[hash], ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, &GitError{Op: "list tags", Err: err}
	}

	for _, names := range tagNames {
		sort.Strings(names)
	}
	return tagNames, nil
}

func toCommit(c *object.Commit) models.Commit {
	return models.NewCommit(c.Hash.String(), c.Author.Name, c.Committer.When, c.Message)
}
