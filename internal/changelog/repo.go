package changelog

import (
	"github.com/wahlandcase/attuned.changelog/internal/config"
	"github.com/wahlandcase/attuned.changelog/internal/git"
)

// FromRepo reads the tag history and origin of the repository at path and
// builds its changelog
func FromRepo(cfg *config.Config, path string) (*Changelog, error) {
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	originURL, err := git.OriginURL(repo)
	if err != nil {
		return nil, err
	}

	tags, err := git.TagHistory(repo, cfg.UntaggedName)
	if err != nil {
		return nil, err
	}

	return Build(cfg, originURL, tags)
}
