package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/halvorsen/negafish/eval"
	"github.com/halvorsen/negafish/facade"
	"github.com/halvorsen/negafish/internal/config"
	"github.com/halvorsen/negafish/internal/logging"
	"github.com/halvorsen/negafish/search"
)

// errQuit unwinds the read loop in main without being logged as a
// protocol error.
var errQuit = fmt.Errorf("quit")

// uci holds the single piece of state the line protocol needs: the
// façade engine underneath it. Everything else is parsed fresh from
// each line.
type uci struct {
	eng *facade.Engine
	log *logging.Logger
	cfg config.Config
}

func newUCI(cfg config.Config, log *logging.Logger) *uci {
	weights := eval.MaterialWeights{
		Pawn:   cfg.Eval.Pawn,
		Knight: cfg.Eval.Knight,
		Bishop: cfg.Eval.Bishop,
		Rook:   cfg.Eval.Rook,
		Queen:  cfg.Eval.Queen,
	}
	return &uci{eng: facade.NewWithOptions(cfg.TTSizeMB, weights), log: log, cfg: cfg}
}

// execute dispatches a single input line to its handler, mirroring the
// teacher's command-per-function layout.
func (u *uci) execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "uci":
		u.uciCmd()
	case "isready":
		u.isready()
	case "ucinewgame":
		u.ucinewgame()
	case "position":
		return u.position(args)
	case "go":
		u.goCmd(args)
	case "quit":
		return errQuit
	default:
		u.log.Infof("unhandled input: %s", line)
	}
	return nil
}

func (u *uci) uciCmd() {
	fmt.Println("id name negafish")
	fmt.Println("id author halvorsen")
	fmt.Println("uciok")
}

func (u *uci) isready() {
	fmt.Println("readyok")
}

func (u *uci) ucinewgame() {
	u.eng.NewGame()
}

// position parses "position [startpos|fen <fen>] [moves <m1> <m2> ...]".
func (u *uci) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected argument for 'position'")
	}

	var fen string
	rest := args[1:]
	switch args[0] {
	case "startpos":
		fen = ""
	case "fen":
		if len(args) < 7 {
			return fmt.Errorf("expected 6 FEN fields after 'fen'")
		}
		fen = strings.Join(args[1:7], " ")
		rest = args[7:]
	default:
		return fmt.Errorf("expected 'startpos' or 'fen', got %q", args[0])
	}

	var moves []string
	if len(rest) > 0 {
		if rest[0] != "moves" {
			return fmt.Errorf("expected 'moves', got %q", rest[0])
		}
		moves = rest[1:]
	}

	if fen == "" {
		u.eng.NewGame()
		if len(moves) == 0 {
			return nil
		}
		fen = u.eng.FEN()
	}
	if err := u.eng.SetPosition(fen, moves); err != nil {
		return err
	}
	u.printBoard()
	return nil
}

// goCmd parses a subset of UCI's "go" options: depth and movetime.
func (u *uci) goCmd(args []string) {
	lim := search.Limits{MaxDepth: u.cfg.DefaultDepth}
	if u.cfg.DefaultMoveTime > 0 {
		lim.MoveTime = time.Duration(u.cfg.DefaultMoveTime) * time.Millisecond
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if d, err := strconv.Atoi(args[i+1]); err == nil {
					lim.MaxDepth = d
				}
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				if ms, err := strconv.Atoi(args[i+1]); err == nil {
					lim.MoveTime = time.Duration(ms) * time.Millisecond
				}
				i++
			}
		}
	}

	res := u.eng.Search(context.Background(), lim)
	u.log.Infof("depth %d nodes %d score %d", res.Depth, res.Nodes, res.ScoreCP)
	if res.ScoreCP >= search.MateScore()-1000 || res.ScoreCP <= -search.MateScore()+1000 {
		color.New(color.FgHiRed).Printf("mate score detected: %d\n", res.ScoreCP)
	}
	fmt.Printf("bestmove %s\n", res.BestMove)
}

func (u *uci) printBoard() {
	color.New(color.FgHiBlack).Println(u.eng.FEN())
}
