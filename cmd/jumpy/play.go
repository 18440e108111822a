package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jumpy-jack/internal/config"
	"github.com/vovakirdan/jumpy-jack/internal/core"
	"github.com/vovakirdan/jumpy-jack/internal/logging"
	"github.com/vovakirdan/jumpy-jack/internal/platform/tui"
	"github.com/vovakirdan/jumpy-jack/internal/platform/window"
	"github.com/vovakirdan/jumpy-jack/internal/runner"
	"github.com/vovakirdan/jumpy-jack/internal/storage"
)

var (
	flagRenderer string
	flagRecord   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Jumpy Jack",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump
  F/R        - Restart (after the game ends)
  Q/Esc      - Quit
  Ctrl+S     - Screenshot (terminal only)

Renderers:
  tui    - Draw in the terminal (default)
  window - Open a desktop window

Examples:
  jumpy play
  jumpy play --renderer window
  jumpy play --seed 42 --record
  jumpy play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "tui", "Renderer: tui or window")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run to the replay journal")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagRenderer != "tui" && flagRenderer != "window" {
		fmt.Fprintf(os.Stderr, "Error: unknown renderer %q (use tui or window)\n", flagRenderer)
		os.Exit(1)
	}

	cfg := loadConfig()
	logger := openLogger()
	defer logger.Close()

	seed := resolveSeed(cfg.Seed)
	session := runner.New(cfg, seed)
	session.OnEnd = func(score int) {
		logger.Info("game ended", "score", score, "frame", session.Frames())
	}
	session.OnRestart = func() {
		logger.Info("game restarted", "frame", session.Frames())
	}

	var rec *runner.Recorder
	if flagRecord {
		rec = runner.NewRecorder()
	}

	logger.Info("session started", "seed", seed, "renderer", flagRenderer, "fps", cfg.Window.FPS)

	var runErr error
	switch flagRenderer {
	case "tui":
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		_, runErr = tui.Run(session, tui.Options{
			Runtime: core.RuntimeConfig{
				ScreenW:  width,
				ScreenH:  height,
				TickRate: cfg.Window.FPS,
			},
			Recorder: rec,
			Logger:   logger.Logger,
		})
	case "window":
		runErr = window.Run(session, window.Options{
			Window:   cfg.Window,
			Recorder: rec,
			Logger:   logger.Logger,
		})
	}

	logger.Info("session closed", "score", session.Score(), "frames", session.Frames())

	if rec != nil {
		saveRecording(logger, seed, session, rec)
	}

	if runErr != nil {
		logger.Error("run failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// saveRecording stores the run in the replay journal. Failures are reported but not fatal.
func saveRecording(logger *logging.Logger, seed int64, session *runner.Session, rec *runner.Recorder) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open recordings database: %v\n", err)
		return
	}
	defer store.Close()

	cfgYAML, err := config.Marshal(session.Config())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save recording: %v\n", err)
		return
	}

	id, err := store.SaveRecording(storage.Recording{
		Seed:       seed,
		ConfigYAML: string(cfgYAML),
		Frames:     session.Frames(),
		FinalScore: session.Score(),
		Events:     rec.Events(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save recording: %v\n", err)
		return
	}
	logger.Info("recording saved", "id", id, "events", len(rec.Events()))
	fmt.Printf("Recording saved as #%d (score %d). Replay with 'jumpy replay run %d'.\n", id, session.Score(), id)
}
