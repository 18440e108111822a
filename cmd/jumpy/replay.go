package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jumpy-jack/internal/config"
	"github.com/vovakirdan/jumpy-jack/internal/platform/tui"
	"github.com/vovakirdan/jumpy-jack/internal/runner"
	"github.com/vovakirdan/jumpy-jack/internal/storage"
)

var (
	flagReplayLimit int
	flagReplayPlain bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "List and re-run recorded runs",
	Long: `Runs played with --record are stored with their seed, config and every
key press. A recorded run can be re-simulated without a screen; the same seed
and inputs always produce the same score.

Examples:
  jumpy replay list
  jumpy replay list --plain --limit 5
  jumpy replay run 3
  jumpy replay delete 3`,
}

var replayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	Run:   runReplayList,
}

var replayRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Re-simulate a recorded run and print its result",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayRun,
}

var replayDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayDelete,
}

func init() {
	replayListCmd.Flags().IntVar(&flagReplayLimit, "limit", 50, "Maximum number of recordings to show")
	replayListCmd.Flags().BoolVar(&flagReplayPlain, "plain", false, "Print a plain list instead of the interactive browser")

	replayCmd.AddCommand(replayListCmd)
	replayCmd.AddCommand(replayRunCmd)
	replayCmd.AddCommand(replayDeleteCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening recordings database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid recording id %q\n", arg)
		os.Exit(1)
	}
	return id
}

func runReplayList(cmd *cobra.Command, args []string) {
	store := openStore()
	recordings, err := store.Recordings(flagReplayLimit)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recordings: %v\n", err)
		os.Exit(1)
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagReplayPlain || termErr != nil {
		printRecordings(recordings)
		return
	}

	id, err := tui.RunReplayBrowser(recordings, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if id != 0 {
		replayRecording(id)
	}
}

func printRecordings(recordings []storage.RecordingSummary) {
	if len(recordings) == 0 {
		fmt.Println("No recordings yet.")
		fmt.Println()
		fmt.Println("Play 'jumpy play --record' to record a run.")
		return
	}

	fmt.Printf("  %-6s  %-8s  %-8s  %-8s  %s\n", "ID", "Score", "Ticks", "Inputs", "Date")
	fmt.Printf("  %-6s  %-8s  %-8s  %-8s  %s\n", "--", "-----", "-----", "------", "----")
	for _, r := range recordings {
		fmt.Printf("  %-6d  %-8d  %-8d  %-8d  %s\n",
			r.ID, r.FinalScore, r.Frames, r.EventCount, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runReplayRun(cmd *cobra.Command, args []string) {
	replayRecording(parseID(args[0]))
}

func replayRecording(id int64) {
	store := openStore()
	rec, err := store.Recording(id)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading recording: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no recording with id %d\n", id)
		os.Exit(1)
	}

	cfg, err := config.Parse([]byte(rec.ConfigYAML))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: recording %d has a broken config: %v\n", id, err)
		os.Exit(1)
	}

	logger := openLogger()
	defer logger.Close()

	session := runner.Replay(cfg, rec.Seed, rec.Events, rec.Frames)
	logger.Info("replay finished", "id", id, "score", session.Score(), "frames", session.Frames())

	fmt.Printf("Recording #%d (seed %d)\n", id, rec.Seed)
	fmt.Printf("  Ticks:       %d\n", session.Frames())
	fmt.Printf("  Final score: %d\n", session.Score())
	fmt.Printf("  State:       %s\n", session.State())
	if session.Score() != rec.FinalScore {
		fmt.Printf("  Warning: recorded score was %d\n", rec.FinalScore)
	}
}

func runReplayDelete(cmd *cobra.Command, args []string) {
	id := parseID(args[0])
	store := openStore()
	defer store.Close()

	if err := store.DeleteRecording(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting recording: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted recording #%d\n", id)
}
