package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/majkprpik/kina/internal/board"
	"github.com/majkprpik/kina/internal/logger"
	"github.com/majkprpik/kina/internal/session"
	"github.com/majkprpik/kina/internal/store"
)

var (
	genFlags   boardFlags
	numTilings int
	outputFile string
)

// Pixel geometry of the HTML output.
const (
	tileSize    = 40
	tilePadding = 3
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random domino tilings",
		Long: `Generate one or more random domino tilings of a rectangular board.

Each tiling is the best of up to --attempts randomized greedy passes; the
search stops early once a pass covers every cell.

Examples:
  kina gen -W 8 -H 8
  kina gen -W 6 -H 4 -n 3 --seed 42
  kina gen -W 10 -H 10 -o tilings.html
  kina gen -W 5 -H 5 -o tiling.json`,
		RunE: runGen,
	}

	genFlags.register(genCmd)
	genCmd.Flags().IntVarP(&numTilings, "number", "n", 1, "Number of tilings to generate")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (.html page or .json snapshot)")

	rootCmd.AddCommand(genCmd)
}

// generateHTML creates an HTML file with tilings, one per page.
func generateHTML(filename string, boards []*board.Board) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	return writeHTML(file, boards)
}

func writeHTML(w io.Writer, boards []*board.Board) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Domino Tilings</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        .board {
            position: relative;
            margin: 20px auto;
            background-size: %[1]dpx %[1]dpx;
            background-image:
                linear-gradient(to right, #acacac 1px, transparent 1px),
                linear-gradient(to bottom, #acacac 1px, transparent 1px);
            border-right: 1px solid #acacac;
            border-bottom: 1px solid #acacac;
        }
        .domino {
            position: absolute;
            box-sizing: border-box;
            border-radius: 6px;
            background-color: #3b6ea5;
            border: 2px solid #24476d;
        }
        .domino.east {
            width: %[2]dpx;
            height: %[3]dpx;
        }
        .domino.south {
            width: %[3]dpx;
            height: %[2]dpx;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`, tileSize, 2*tileSize-2*tilePadding, tileSize-2*tilePadding)
	if err != nil {
		return err
	}

	// Write each tiling on its own page
	for i, b := range boards {
		_, err = fmt.Fprintf(w, `    <div class="page">
        <h1>Domino Tiling #%d</h1>
        <p>%dx%d board, %d dominoes, %d/%d cells covered</p>
        %s
    </div>
`, i+1, b.Width(), b.Height(), b.Len(), b.OccupiedCount(), b.Area(), boardToHTML(b))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, `</body>
</html>
`)
	return err
}

// boardToHTML converts a board to absolutely positioned domino divs.
func boardToHTML(b *board.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<div class=\"board\" style=\"width: %dpx; height: %dpx\">", b.Width()*tileSize, b.Height()*tileSize)

	for _, d := range b.Dominoes() {
		class := "east"
		if d.Orientation() == board.Vertical {
			class = "south"
		}
		fmt.Fprintf(&sb, "<div class=\"domino %s\" data-id=\"%d\" style=\"top: %dpx; left: %dpx\"></div>",
			class, d.ID, d.A.Y*tileSize+tilePadding, d.A.X*tileSize+tilePadding)
	}

	sb.WriteString("</div>")
	return sb.String()
}

// numberedPath inserts "_<i>" before the extension when writing several files.
func numberedPath(path string, i, total int) string {
	if total <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}

func runGen(cmd *cobra.Command, args []string) error {
	if numTilings < 1 {
		return fmt.Errorf("number of tilings must be at least 1, got %d", numTilings)
	}

	cfg, err := genFlags.loadConfig(cmd)
	if err != nil {
		return err
	}

	cleanup := setupLogging(cmd)
	defer cleanup()

	out := cmd.OutOrStdout()
	sess := session.New(cfg, session.WithLogger(logger.L()))

	var boards []*board.Board
	var snaps []store.Snapshot
	for i := 0; i < numTilings; i++ {
		_, res := sess.Regenerate()
		b := sess.Board()

		switch {
		case outputFile == "":
			fmt.Fprintf(out, "Tiling #%d (%dx%d, %d/%d cells, %d attempts):\n",
				i+1, b.Width(), b.Height(), b.OccupiedCount(), b.Area(), res.Attempts)
			fmt.Fprintln(out, b.Format())
		case strings.EqualFold(filepath.Ext(outputFile), ".json"):
			snaps = append(snaps, sess.Snapshot())
		default:
			// keep a copy; the session board is reset on the next iteration
			cp := board.New(0, 0)
			if err := sess.Snapshot().Restore(cp); err != nil {
				return err
			}
			boards = append(boards, cp)
		}
	}

	if outputFile == "" {
		return nil
	}

	if len(snaps) > 0 {
		for i, snap := range snaps {
			path := numberedPath(outputFile, i, len(snaps))
			snap.SavedAt = time.Now().UTC()
			if err := store.WriteFile(path, snap); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
		}
		fmt.Fprintf(out, "Generated %d tiling(s) in %s\n", len(snaps), outputFile)
		return nil
	}

	// Ensure .html extension
	filename := outputFile
	if filepath.Ext(filename) != ".html" {
		filename = filename + ".html"
	}

	if err := generateHTML(filename, boards); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	fmt.Fprintf(out, "Generated %d tiling(s) in %s\n", numTilings, filename)
	return nil
}
