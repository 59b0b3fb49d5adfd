package cmd

import (
	"github.com/spf13/cobra"

	"github.com/majkprpik/kina/internal/board"
	"github.com/majkprpik/kina/internal/logger"
	"github.com/majkprpik/kina/internal/session"
	"github.com/majkprpik/kina/internal/store"
	"github.com/majkprpik/kina/internal/tui"
)

var (
	playFlags boardFlags
	loadPath    string
	generate    bool
	orientation string
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Edit a domino tiling interactively",
		Long: `Open the interactive editor.

Move the cursor with the arrow keys or hjkl, rotate the ghost domino with
space, place it with enter and remove the domino under the cursor with x.
r generates a new tiling, c clears the board and s saves a snapshot.`,
		RunE: runPlay,
	}

	playFlags.register(playCmd)
	playCmd.Flags().StringVar(&loadPath, "load", "", "Start from a saved snapshot (\"latest\" for the newest one)")
	playCmd.Flags().BoolVarP(&generate, "generate", "g", false, "Start with a generated tiling")
	playCmd.Flags().StringVar(&orientation, "orientation", "horizontal", "Initial ghost orientation (horizontal|h, vertical|v)")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := playFlags.loadConfig(cmd)
	if err != nil {
		return err
	}
	orient, err := board.ParseOrientation(orientation)
	if err != nil {
		return err
	}

	cleanup := setupLogging(cmd)
	defer cleanup()

	log := logger.L()
	sess := session.New(cfg, session.WithLogger(log))
	snapshots := store.NewJSONStore(cfg.Paths.SnapshotsDir)

	path := loadPath
	if path == "latest" {
		if path, err = snapshots.Latest(); err != nil {
			return err
		}
	}

	switch {
	case path != "":
		snap, err := store.ReadFile(path)
		if err != nil {
			return err
		}
		if err := sess.Restore(snap); err != nil {
			return err
		}
	case generate:
		sess.Regenerate()
	}

	return tui.Run(tui.Deps{
		Session:     sess,
		Store:       snapshots,
		Logger:      log,
		Orientation: orient,
	})
}
