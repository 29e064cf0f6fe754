// Package cli implements the pushwatch command: commit, push, then
// watch the CI run triggered by that exact commit.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/shirk33y/pushwatch/internal/config"
	pwerrors "github.com/shirk33y/pushwatch/internal/errors"
	"github.com/shirk33y/pushwatch/internal/git"
	"github.com/shirk33y/pushwatch/internal/github"
	"github.com/shirk33y/pushwatch/internal/logs"
	"github.com/shirk33y/pushwatch/internal/ui"
	"github.com/shirk33y/pushwatch/internal/watch"
	"github.com/shirk33y/pushwatch/internal/workflow"
)

// DefaultCommitMessage is used when local changes must be committed and
// no message argument was given.
const DefaultCommitMessage = "wip"

var (
	flagWorkflow string
	flagRemote   string
	flagBranch   string
	flagCopyURL  bool

	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "pushwatch [commit message]",
	Short: "Push local changes and watch the CI run they trigger",
	Long: `pushwatch commits local changes if any (using the optional message
argument, default "` + DefaultCommitMessage + `"), pushes the branch, finds the GitHub
Actions run triggered by that exact commit, and streams its log until
the run completes. Exits 0 only when the run concludes with success.

Configuration comes from .github/pushwatch.yml, the PUSHWATCH_WORKFLOW,
PUSHWATCH_REMOTE and PUSHWATCH_BRANCH environment variables, and flags,
in increasing order of precedence. Authentication is delegated to the
gh CLI.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pushwatch: %v\n", err)
		return watch.ExitFailure
	}

	return exitCode
}

func init() {
	rootCmd.Flags().StringVarP(&flagWorkflow, "workflow", "w", "", "workflow file whose runs to watch (default ci.yml)")
	rootCmd.Flags().StringVarP(&flagRemote, "remote", "r", "", "remote to push to (default origin)")
	rootCmd.Flags().StringVarP(&flagBranch, "branch", "b", "", "branch to push and correlate (default current)")
	rootCmd.Flags().BoolVar(&flagCopyURL, "copy-url", false, "copy the located run's URL to the clipboard")
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := logs.CheckGHCLIAvailable(); err != nil {
		return err
	}

	root, err := git.RepoRoot(ctx)
	if err != nil {
		return &pwerrors.RepoContextError{Reason: "not inside a git repository", Err: err}
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	cfg.ApplyEnv()
	applyFlags(cfg, flagWorkflow, flagRemote, flagBranch, flagCopyURL)

	slug, err := resolveSlug(ctx, cfg.Remote)
	if err != nil {
		return err
	}

	branch := cfg.Branch
	if branch == "" {
		branch = git.CurrentBranch(ctx)
		if branch == "" {
			return &pwerrors.RepoContextError{Reason: "cannot determine current branch (detached HEAD?)"}
		}
	}

	if err := commitAndPush(ctx, cfg, branch, commitMessage(args)); err != nil {
		return err
	}

	// The correlation key. Resolved strictly after the push so a run
	// listing fetched afterward can legitimately contain it.
	sha, err := git.HeadSHA(ctx)
	if err != nil {
		return err
	}

	printBanner(slug, branch, cfg.Workflow, sha)
	warnMissingWorkflow(root, cfg.Workflow)

	client, err := github.NewClient(slug)
	if err != nil {
		return err
	}

	fetcher := logs.NewFetcher()

	fmt.Print("Locating run")

	located, err := watch.Locate(ctx, client, cfg.Workflow, sha, watch.LocateOptions{
		MaxAttempts: cfg.LocateAttempts,
		Interval:    cfg.LocateIntervalDuration(),
		Progress:    os.Stdout,
	})

	fmt.Println()

	if err != nil {
		var notFound *pwerrors.RunNotFoundError
		if stderrors.As(err, &notFound) {
			dumpRecentRuns(os.Stderr, client, cfg.Workflow)
		}

		return err
	}

	fmt.Printf("Found run %s %s\n", ui.AccentStyle.Render(fmt.Sprint(located.ID)), ui.MutedStyle.Render(located.HTMLURL))

	if cfg.CopyURL {
		if err := clipboard.WriteAll(located.HTMLURL); err != nil {
			log.Printf("warning: could not copy run URL: %v", err)
		}
	}

	tailer := watch.NewTailer(client, fetcher, located.ID, cfg.TailIntervalDuration(), os.Stdout)

	terminal, err := tailer.Tail(ctx)
	if err != nil {
		return err
	}

	exitCode = watch.Report(terminal, fetcher, os.Stdout, os.Stderr)

	return nil
}

// applyFlags overlays set flags onto the config. Flags beat env and file.
func applyFlags(cfg *config.Config, workflowFlag, remoteFlag, branchFlag string, copyURL bool) {
	if workflowFlag != "" {
		cfg.Workflow = workflowFlag
	}

	if remoteFlag != "" {
		cfg.Remote = remoteFlag
	}

	if branchFlag != "" {
		cfg.Branch = branchFlag
	}

	if copyURL {
		cfg.CopyURL = true
	}
}

// commitMessage returns the positional message argument, or the default.
func commitMessage(args []string) string {
	if len(args) == 1 && args[0] != "" {
		return args[0]
	}

	return DefaultCommitMessage
}

// resolveSlug determines the owner/repo slug, preferring go-gh's
// detection and falling back to parsing the configured remote's URL.
func resolveSlug(ctx context.Context, remote string) (string, error) {
	slug, err := github.DetectRepo()
	if err == nil {
		return slug, nil
	}

	remoteURL, urlErr := git.RemoteURL(ctx, remote)
	if urlErr != nil {
		return "", &pwerrors.RepoContextError{Reason: fmt.Sprintf("no usable remote %q", remote), Err: urlErr}
	}

	slug, parseErr := git.ParseRemoteSlug(remoteURL)
	if parseErr != nil {
		return "", &pwerrors.RepoContextError{Reason: "cannot determine repository slug", Err: parseErr}
	}

	return slug, nil
}

// commitAndPush commits local changes if any, then pushes when the
// branch has commits the remote does not.
func commitAndPush(ctx context.Context, cfg *config.Config, branch, message string) error {
	dirty, err := git.HasLocalChanges(ctx)
	if err != nil {
		return err
	}

	committed := false

	if dirty {
		fmt.Printf("Committing local changes (%q)\n", message)

		if err := git.CommitAll(ctx, message); err != nil {
			return err
		}

		committed = true
	}

	ahead, aheadErr := git.AheadCount(ctx, cfg.Remote, branch)
	if committed || ahead > 0 || aheadErr != nil {
		// An ahead-count error usually means the branch has no
		// upstream yet; pushing creates it.
		fmt.Printf("Pushing %s to %s\n", branch, cfg.Remote)

		if err := git.Push(ctx, cfg.Remote, branch); err != nil {
			return err
		}
	} else {
		fmt.Println("Nothing to push; watching the run for the current HEAD")
	}

	return nil
}

func printBanner(slug, branch, workflowFile, sha string) {
	fmt.Println()
	fmt.Println(ui.TitleStyle.Render("pushwatch"))
	fmt.Printf("  %s %s\n", ui.MutedStyle.Render("repo:    "), slug)
	fmt.Printf("  %s %s\n", ui.MutedStyle.Render("branch:  "), branch)
	fmt.Printf("  %s %s\n", ui.MutedStyle.Render("workflow:"), workflowFile)
	fmt.Printf("  %s %s\n", ui.MutedStyle.Render("commit:  "), sha)
	fmt.Println()
}

// warnMissingWorkflow hints at typos when the configured workflow file
// is absent from the local checkout, and at a missing push trigger when
// it is present but would never start on a push. Non-fatal: the
// checkout may be sparse, and the locator timeout bounds the damage.
func warnMissingWorkflow(root, workflowFile string) {
	workflows, err := workflow.Discover(root)
	if err != nil || len(workflows) == 0 {
		return
	}

	if wf, ok := workflow.Find(workflowFile, workflows); ok {
		if !wf.HasTrigger("push") {
			log.Printf("warning: workflow %s has no push trigger; a push will not start it", workflowFile)
		}

		return
	}

	suggestions := workflow.Suggest(workflowFile, workflows, 3)
	if len(suggestions) > 0 {
		log.Printf("warning: workflow %s not found under .github/workflows; did you mean %v?", workflowFile, suggestions)
	} else {
		log.Printf("warning: workflow %s not found under .github/workflows", workflowFile)
	}
}

// dumpRecentRuns prints the latest runs of the workflow as a diagnostic
// when no run matched the pushed commit.
func dumpRecentRuns(w io.Writer, client watch.RunClient, workflowFile string) {
	runs, err := client.ListWorkflowRuns(workflowFile, 10)
	if err != nil {
		log.Printf("warning: could not list recent runs: %v", err)
		return
	}

	fmt.Fprintf(w, "Recent runs for %s:\n", workflowFile)

	for _, r := range runs {
		fmt.Fprintln(w, "  "+formatRunLine(r))
	}
}

func formatRunLine(r github.WorkflowRun) string {
	sha := r.HeadSHA
	if len(sha) > 10 {
		sha = sha[:10]
	}

	state := r.Status
	if r.Conclusion != "" {
		state = r.Conclusion
	}

	return fmt.Sprintf("%d  %-10s %-12s %s", r.ID, sha, state, r.CreatedAt.Format(time.RFC3339))
}
