package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wahlandcase/attuned.changelog/internal/issues"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "attcl.toml", `
fallback_label = "Other"
ignore_commits_pattern = "^\\[release\\]"

[jira]
pattern = "PROJ-[0-9]+"
server = "https://jira.example.com/"

[[issues]]
name = "GitHub"
pattern = "#([0-9]+)"
link = "https://github.com/o/r/issues/${PATTERN_GROUP_1}"

[[issues]]
name = "Incident"
pattern = "INC[0-9]+"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Other", cfg.FallbackLabel)
	assert.Equal(t, "Unreleased", cfg.UntaggedName)
	require.NotNil(t, cfg.IgnoreRegex())
	assert.True(t, cfg.IgnoreRegex().MatchString("[release] 1.0"))

	patterns := cfg.IssuePatterns()
	require.Len(t, patterns, 3)
	assert.Equal(t, "GitHub", patterns[0].Name)
	require.NotNil(t, patterns[0].Link)
	assert.Equal(t, "https://github.com/o/r/issues/${PATTERN_GROUP_1}", *patterns[0].Link)
	assert.Equal(t, "Incident", patterns[1].Name)
	assert.Nil(t, patterns[1].Link)
	assert.Equal(t, issues.JiraName, patterns[2].Name)
	require.NotNil(t, patterns[2].Link)
	assert.Equal(t, "https://jira.example.com/browse/${PATTERN_GROUP}", *patterns[2].Link)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "attcl.yaml", `
fallback_label: Misc
untagged_name: Next
jira:
  pattern: ""
issues:
  - name: Bug
    pattern: "BUG-[0-9]+"
    link: "https://bugs/${PATTERN_GROUP}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Misc", cfg.FallbackLabel)
	assert.Equal(t, "Next", cfg.UntaggedName)
	assert.Nil(t, cfg.IgnoreRegex())

	patterns := cfg.IssuePatterns()
	require.Len(t, patterns, 1)
	assert.Equal(t, "Bug", patterns[0].Name)
}

func TestLoadInvalidIgnorePattern(t *testing.T) {
	path := writeFile(t, "attcl.toml", `ignore_commits_pattern = "(["`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignore_commits_pattern")
}

func TestLoadInvalidIssuePatternIsDeferred(t *testing.T) {
	path := writeFile(t, "attcl.toml", `
[[issues]]
name = "Broken"
pattern = "(["
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "([", cfg.IssuePatterns()[0].Pattern)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "attcl.toml", `fallback_label = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"attcl.toml", "attcl.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, DefaultConfig().Save(path))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, DefaultConfig().Issues, cfg.Issues)
			assert.Equal(t, DefaultConfig().Jira, cfg.Jira)
		})
	}
}

func TestDefaultPatterns(t *testing.T) {
	patterns := DefaultConfig().IssuePatterns()
	require.Len(t, patterns, 2)
	assert.Equal(t, "GitHub", patterns[0].Name)
	assert.Equal(t, issues.JiraName, patterns[1].Name)
	assert.Nil(t, patterns[1].Link)
}
