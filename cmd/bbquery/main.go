package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/shell"
	"github.com/hailam/chessbits/internal/store"
	"github.com/mattn/go-isatty"
)

var (
	dbPath  = flag.String("db", "", "position store directory (default: platform data dir, \"-\" to disable)")
	fen     = flag.String("fen", "", "initial position (default: starting position)")
	noColor = flag.Bool("no-color", false, "disable coloured output")
	script  = flag.String("script", "", "read commands from file instead of stdin")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("bbquery: ")

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run sets up the board, store and input, then runs the shell. Resources
// are released before it returns, so main can exit on the error.
func run() error {
	b := board.NewStartBoard()
	if *fen != "" {
		var err error
		b, err = board.ParseFEN(*fen)
		if err != nil {
			return fmt.Errorf("invalid -fen: %w", err)
		}
	}

	var in io.Reader = os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			return fmt.Errorf("could not open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	st, err := openStore(*dbPath)
	if err != nil {
		return fmt.Errorf("could not open position store: %w", err)
	}
	if st != nil {
		defer st.Close()
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	sh := shell.New(b, st, os.Stdout)
	sh.SetColor(tty && !*noColor)
	if err := sh.Run(in); err != nil {
		return fmt.Errorf("read error: %w", err)
	}
	return nil
}

// openStore opens the store at path, the default location when path is
// empty, or nothing when path is "-".
func openStore(path string) (*store.Store, error) {
	switch path {
	case "-":
		return nil, nil
	case "":
		return store.OpenDefault()
	default:
		return store.Open(path)
	}
}
