package main

// Must be first import - fixes terminal environment before lipgloss loads
import _ "github.com/wahlandcase/attuned.changelog/internal/termfix"

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wahlandcase/attuned.changelog/internal/app"
	"github.com/wahlandcase/attuned.changelog/internal/changelog"
	"github.com/wahlandcase/attuned.changelog/internal/config"
	"github.com/wahlandcase/attuned.changelog/internal/git"
	"github.com/wahlandcase/attuned.changelog/internal/github"
	"github.com/wahlandcase/attuned.changelog/internal/remote"
	"github.com/wahlandcase/attuned.changelog/internal/render"
	"github.com/wahlandcase/attuned.changelog/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	repoPath   string
	configPath string
	noColor    bool
	outputPath string
	terminal   bool
	publishTag string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "attcl",
		Short:         "Browse and generate changelogs grouped by issue",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || os.Getenv("NO_COLOR") != "" {
				ui.DisableColor()
			}
		},
		RunE: runBrowse,
	}

	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "r", ".", "Path to the git repository")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: attcl.toml in the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the changelog as Markdown",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	generateCmd.Flags().BoolVar(&terminal, "terminal", false, "Print a styled summary instead of Markdown")

	originCmd := &cobra.Command{
		Use:   "origin",
		Short: "Show what is derived from the origin remote",
		Args:  cobra.NoArgs,
		RunE:  runOrigin,
	}

	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Replace a GitHub release's notes with the changelog of its tag",
		Args:  cobra.NoArgs,
		RunE:  runPublish,
	}
	publishCmd.Flags().StringVarP(&publishTag, "tag", "t", "", "Tag of the release")
	_ = publishCmd.MarkFlagRequired("tag")

	rootCmd.AddCommand(generateCmd, originCmd, publishCmd)
	return rootCmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !git.IsGitRepo(repoPath) {
		return fmt.Errorf("%s is not inside a git repository", repoPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := app.New(cfg, repoPath)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cl, err := changelog.FromRepo(cfg, repoPath)
	if err != nil {
		return err
	}
	if cl.OriginURL == "" {
		ui.Warning("no origin remote, commit links are left out")
	}

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outputPath, err)
		}
		defer f.Close()
		if err := writeChangelog(f, cfg, cl); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		return nil
	}

	return writeChangelog(cmd.OutOrStdout(), cfg, cl)
}

func writeChangelog(out io.Writer, cfg *config.Config, cl *changelog.Changelog) error {
	if terminal {
		_, err := fmt.Fprintln(out, ui.RenderChangelog(cl))
		return err
	}

	r, err := render.New(cfg.TemplatePath())
	if err != nil {
		return err
	}
	return r.Render(out, cl)
}

func runOrigin(cmd *cobra.Command, args []string) error {
	repo, err := git.Open(repoPath)
	if err != nil {
		return err
	}

	originURL, err := git.OriginURL(repo)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderMetadata(originURL, remote.Resolve(originURL)))
	return nil
}

func runPublish(cmd *cobra.Command, args []string) error {
	if err := github.CheckAuth(); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cl, err := changelog.FromRepo(cfg, repoPath)
	if err != nil {
		return err
	}
	if !cl.Repo.IsGitHub() {
		return fmt.Errorf("origin %q is not a GitHub repository", cl.OriginURL)
	}

	section := cl.ForTag(publishTag)
	if section == nil {
		return fmt.Errorf("no commits for tag %s", publishTag)
	}

	r, err := render.New(cfg.TemplatePath())
	if err != nil {
		return err
	}
	var notes strings.Builder
	if err := r.Render(&notes, section); err != nil {
		return err
	}

	if err := github.SetReleaseNotes(cl.Repo.OwnerName(), cl.Repo.RepoName(), publishTag, notes.String()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated release notes for %s\n", publishTag)
	return nil
}
