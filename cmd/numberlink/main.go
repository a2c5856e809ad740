// Command numberlink reads a puzzle description, builds a square board,
// solves it, and prints the rendered result.
//
// Usage:
//
//	numberlink -w 5 -h 5 [-file puzzle.txt]
//
// The puzzle description is read from -file, or from stdin if -file is
// omitted. It is a line-oriented format:
//
//	termini A 0,0 1,4
//	bridge 2,1
//	warp 0,1
//	warp 0,0 up
//	hole 3,3
//	wall 1,1 2,1
//
// Blank lines and lines starting with # are ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/numberlink/board"
	"github.com/katalvlaran/numberlink/builder"
	"github.com/katalvlaran/numberlink/location"
	"github.com/katalvlaran/numberlink/shape"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	log := slog.New(slog.NewTextHandler(stderr, nil))

	fs := flag.NewFlagSet("numberlink", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Int("w", 0, "board width")
	height := fs.Int("h", 0, "board height")
	path := fs.String("file", "", "puzzle description file (defaults to stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("numberlink: -w and -h must be positive")
	}

	in := io.Reader(os.Stdin)
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			return fmt.Errorf("numberlink: opening puzzle file: %w", err)
		}
		defer f.Close()
		in = f
	}

	dims, err := location.NewDimension(*width, *height)
	if err != nil {
		return fmt.Errorf("numberlink: %w", err)
	}
	b := builder.NewSquare(dims)

	if err := applyPuzzle(b, in); err != nil {
		return fmt.Errorf("numberlink: %w", err)
	}

	log.Info("building board", "width", *width, "height", *height)
	start := time.Now()
	built, err := b.Build()
	if err != nil {
		log.Error("build failed", "err", err)
		return fmt.Errorf("numberlink: %w", err)
	}
	stats := built.Graph.Stats()
	log.Info("board built", "vertices", stats.VertexCount, "edges", stats.EdgeCount)

	bd := board.New(built.Graph, built.Dims, built.Affiliations, built.Shape)
	solved, err := bd.Solve()
	if err != nil {
		log.Error("solve failed", "err", err, "elapsed", time.Since(start))
		return fmt.Errorf("numberlink: %w", err)
	}
	log.Info("solved", "elapsed", time.Since(start))

	rendered, err := solved.Render()
	if err != nil {
		return fmt.Errorf("numberlink: rendering: %w", err)
	}
	fmt.Fprint(stdout, rendered)
	return nil
}

// applyPuzzle reads line-oriented puzzle directives from r and applies them
// to b. It does not itself detect builder invalidity; that surfaces from
// Build.
func applyPuzzle(b *builder.Square, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "termini":
			if len(fields) != 4 || len([]rune(fields[1])) != 1 {
				return fmt.Errorf("line %d: want 'termini <char> <x,y> <x,y>'", lineNo)
			}
			a, err := parseLocation(fields[2])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			c, err := parseLocation(fields[3])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			b.AddTermini([]rune(fields[1])[0], a, c)
		case "bridge":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: want 'bridge <x,y>'", lineNo)
			}
			loc, err := parseLocation(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			b.AddBridge(loc)
		case "warp":
			if len(fields) != 2 && len(fields) != 3 {
				return fmt.Errorf("line %d: want 'warp <x,y> [direction]'", lineNo)
			}
			loc, err := parseLocation(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			var dir *shape.SquareDirection
			if len(fields) == 3 {
				d, err := parseDirection(fields[2])
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				dir = &d
			}
			b.AddWarp(loc, dir)
		case "hole":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: want 'hole <x,y>'", lineNo)
			}
			loc, err := parseLocation(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			b.DropLocation(loc)
		case "wall":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: want 'wall <x,y> <x,y>'", lineNo)
			}
			a, err := parseLocation(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			c, err := parseLocation(fields[2])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			b.Disconnect(a, c)
		default:
			return fmt.Errorf("line %d: unknown directive %q", lineNo, fields[0])
		}
	}
	return scanner.Err()
}

func parseLocation(s string) (location.Location, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return location.Location{}, fmt.Errorf("malformed location %q, want x,y", s)
	}
	xi, err := strconv.Atoi(x)
	if err != nil {
		return location.Location{}, fmt.Errorf("malformed location %q: %w", s, err)
	}
	yi, err := strconv.Atoi(y)
	if err != nil {
		return location.Location{}, fmt.Errorf("malformed location %q: %w", s, err)
	}
	return location.New(xi, yi), nil
}

func parseDirection(s string) (shape.SquareDirection, error) {
	switch strings.ToLower(s) {
	case "up":
		return shape.Up, nil
	case "down":
		return shape.Down, nil
	case "left":
		return shape.Left, nil
	case "right":
		return shape.Right, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
