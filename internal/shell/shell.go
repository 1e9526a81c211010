// Package shell implements a line-oriented command interpreter over a
// board.Board, for editing positions and querying masks interactively.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/store"
)

var (
	errUsage   = errors.New("usage")
	errNoStore = errors.New("no position store open")
)

// Shell reads commands, applies them to its board and writes the results.
type Shell struct {
	board *board.Board
	store *store.Store
	out   io.Writer

	highlight *color.Color
	piece     *color.Color
}

// New creates a shell editing b. st may be nil, which disables the
// save, load, list, find and delete commands.
func New(b *board.Board, st *store.Store, out io.Writer) *Shell {
	if b == nil {
		b = board.NewBoard()
	}
	return &Shell{
		board:     b,
		store:     st,
		out:       out,
		highlight: color.New(color.FgBlack, color.BgGreen),
		piece:     color.New(color.Bold),
	}
}

// SetColor turns ANSI colouring of grids on or off.
func (s *Shell) SetColor(on bool) {
	if on {
		s.highlight.EnableColor()
		s.piece.EnableColor()
	} else {
		s.highlight.DisableColor()
		s.piece.DisableColor()
	}
}

// Board returns the board being edited.
func (s *Shell) Board() *board.Board {
	return s.board
}

// Run processes commands from r until EOF or "quit". A failing command
// prints "error: ..." and the loop carries on.
func (s *Shell) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if err := s.Exec(cmd, args); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}

	return scanner.Err()
}

// Exec runs a single command.
func (s *Shell) Exec(cmd string, args []string) error {
	switch cmd {
	case "help":
		s.handleHelp()
	case "startpos":
		s.board = board.NewStartBoard()
	case "fen":
		return s.handleFEN(args)
	case "place":
		return s.handlePlace(args)
	case "clear":
		return s.withSquare(args, func(sq board.Square) error {
			return s.board.ClearSquare(sq)
		})
	case "piece":
		return s.withSquare(args, func(sq board.Square) error {
			p := s.board.PieceAt(sq)
			if p == board.NoPiece {
				fmt.Fprintf(s.out, "%s: empty\n", sq)
			} else {
				fmt.Fprintf(s.out, "%s: %c (%s %s)\n", sq, p.Char(), p.Color(), p.Type())
			}
			return nil
		})
	case "moves":
		return s.withSquare(args, func(sq board.Square) error {
			s.printMask(s.board.Moves(sq))
			return nil
		})
	case "attacks":
		return s.handleAttacks(args)
	case "pseudo":
		s.handlePseudo()
	case "side":
		return s.withLetter(args, s.board.SetActiveColor)
	case "castling":
		return s.withArg(args, s.board.SetCastlingRights)
	case "ep":
		return s.withArg(args, s.board.SetEnPassantTarget)
	case "halfmove":
		return s.withInt(args, s.board.SetHalfmoveClock)
	case "fullmove":
		return s.withInt(args, s.board.SetFullmoveNumber)
	case "next":
		s.board.ApplyMoveBookkeeping(true)
	case "check":
		fmt.Fprintf(s.out, "check: %t\nillegal: %t\n", s.board.Check(), s.board.IllegalCheck())
	case "d":
		s.handleDisplay()
	case "save":
		return s.handleSave(args)
	case "load":
		return s.handleLoad(args)
	case "list":
		return s.handleList()
	case "find":
		return s.handleFind()
	case "delete":
		return s.withStoreName(args, func(name string) error {
			return s.store.Delete(name)
		})
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (s *Shell) handleHelp() {
	fmt.Fprint(s.out, `commands:
  startpos                 set up the starting position
  fen [<fen>]              print or load a FEN
  place <sq> <piece>       put a piece (FEN letter) on a square
  clear <sq>               empty a square
  piece <sq>               show the piece on a square
  moves <sq>               pseudo-legal targets of the piece on a square
  attacks <sq>|w|b         squares threatened by a piece or a side
  pseudo                   pseudo-legal moves of the side to move
  side w|b                 set the side to move
  castling <KQkq|->        set castling rights
  ep <sq>|-                set the en passant target
  halfmove <n>             set the halfmove clock
  fullmove <n>             set the fullmove number
  next                     advance the turn
  check                    report check flags
  d                        display the board
  save|load|delete <name>  manage stored positions
  list                     list stored positions
  find                     names this position is stored under
  quit
`)
}

func (s *Shell) handleFEN(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(s.out, s.board.FEN())
		return nil
	}
	b, err := board.ParseFEN(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.board = b
	return nil
}

func (s *Shell) handlePlace(args []string) error {
	if len(args) != 2 || len(args[1]) != 1 {
		return fmt.Errorf("place <square> <piece>: %w", errUsage)
	}
	return s.board.PlacePieceAt(args[0], args[1][0])
}

func (s *Shell) handleAttacks(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("attacks <square>|w|b: %w", errUsage)
	}
	if len(args[0]) == 1 {
		c, err := board.ParseColor(args[0][0])
		if err != nil {
			return err
		}
		s.printMask(s.board.AttackedBy(c))
		return nil
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}
	s.printMask(s.board.Attacks(sq))
	return nil
}

func (s *Shell) handlePseudo() {
	ml := s.board.PseudoLegalMoves(s.board.ActiveColor())
	moves := make([]string, 0, ml.Len())
	for _, m := range ml.Slice() {
		moves = append(moves, m.String())
	}
	fmt.Fprintf(s.out, "%d: %s\n", ml.Len(), strings.Join(moves, " "))
}

func (s *Shell) handleDisplay() {
	fmt.Fprint(s.out, s.board.String())
	fmt.Fprintf(s.out, "FEN: %s\n", s.board.FEN())
	fmt.Fprintf(s.out, "Hash: %016x\n", s.board.Hash())
}

func (s *Shell) handleSave(args []string) error {
	return s.withStoreName(args, func(name string) error {
		if err := s.store.Save(name, s.board); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "saved %s\n", name)
		return nil
	})
}

func (s *Shell) handleLoad(args []string) error {
	return s.withStoreName(args, func(name string) error {
		b, err := s.store.Load(name)
		if err != nil {
			return err
		}
		s.board = b
		return nil
	})
}

func (s *Shell) handleList() error {
	if s.store == nil {
		return errNoStore
	}
	entries, err := s.store.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "%-16s %s\n", e.Name, e.FEN)
	}
	return nil
}

func (s *Shell) handleFind() error {
	if s.store == nil {
		return errNoStore
	}
	names, err := s.store.LookupAll(s.board)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return store.ErrNotFound
	}
	fmt.Fprintln(s.out, strings.Join(names, " "))
	return nil
}

// printMask draws the board with the squares of mask highlighted, then
// lists them.
func (s *Shell) printMask(mask board.Bitboard) {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			cell := "."
			if p := s.board.PieceAt(sq); p != board.NoPiece {
				cell = s.piece.Sprint(p.String())
			}
			if mask.Has(sq) {
				if cell == "." {
					cell = "*"
				}
				cell = s.highlight.Sprint(cell)
			}
			sb.WriteString(cell)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	fmt.Fprint(s.out, sb.String())

	squares := mask.Squares()
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	fmt.Fprintf(s.out, "%d: %s\n", len(names), strings.Join(names, " "))
}

func (s *Shell) withArg(args []string, fn func(string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one argument: %w", errUsage)
	}
	return fn(args[0])
}

func (s *Shell) withLetter(args []string, fn func(byte) error) error {
	return s.withArg(args, func(a string) error {
		if len(a) != 1 {
			return fmt.Errorf("%q: %w", a, board.ErrInvalidArgument)
		}
		return fn(a[0])
	})
}

func (s *Shell) withInt(args []string, fn func(int) error) error {
	return s.withArg(args, func(a string) error {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("%q: %w", a, board.ErrInvalidArgument)
		}
		return fn(n)
	})
}

func (s *Shell) withSquare(args []string, fn func(board.Square) error) error {
	return s.withArg(args, func(a string) error {
		sq, err := board.ParseSquare(a)
		if err != nil {
			return err
		}
		return fn(sq)
	})
}

func (s *Shell) withStoreName(args []string, fn func(string) error) error {
	if s.store == nil {
		return errNoStore
	}
	if len(args) != 1 {
		return fmt.Errorf("expected a name: %w", errUsage)
	}
	return fn(args[0])
}
