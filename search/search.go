package search

import (
	"context"
	"time"

	"github.com/halvorsen/negafish/engine"
	"github.com/halvorsen/negafish/eval"
)

const (
	inf  = 1000000
	mate = 900000
)

// MateScore returns the score magnitude assigned to a forced mate at
// ply zero, so front ends can recognize a mate score without reaching
// into search internals.
func MateScore() int { return mate }

// Limits bounds a single search: MaxDepth stops iterative deepening
// after that many plies, MoveTime stops it after that much wall time
// (zero means no time limit).
type Limits struct {
	MaxDepth int
	MoveTime time.Duration

	// Weights overrides the evaluator's default material values; the
	// zero value means "use the defaults".
	Weights eval.MaterialWeights
}

// Result is what a completed (or interrupted) search produced.
type Result struct {
	Best       engine.Move
	ScoreCP    int
	Depth      int
	Nodes      uint64
	Elapsed    time.Duration
}

// State carries everything a search tree needs that isn't part of the
// position itself: the evaluator, the transposition table, node count,
// and the deadline.
type State struct {
	Eval *eval.Evaluator
	TT   *TranspositionTable

	Nodes uint64

	start    time.Time
	deadline time.Time
	hasLimit bool
	stopped  bool
	ctx      context.Context
}

func NewState(tt *TranspositionTable) *State {
	return &State{Eval: eval.NewEvaluator(), TT: tt}
}

func newStateWithWeights(tt *TranspositionTable, w eval.MaterialWeights) *State {
	return &State{Eval: eval.NewEvaluatorWithWeights(w), TT: tt}
}

func (st *State) elapsed() time.Duration { return time.Since(st.start) }

func (st *State) timeUp() bool {
	if st.stopped {
		return true
	}
	if st.ctx != nil {
		select {
		case <-st.ctx.Done():
			st.stopped = true
			return true
		default:
		}
	}
	if !st.hasLimit {
		return false
	}
	if time.Now().After(st.deadline) {
		st.stopped = true
		return true
	}
	return false
}

// qsearch extends the main search past the horizon with captures and
// promotions only, to avoid misjudging a position in the middle of an
// exchange.
func qsearch(st *State, pos *engine.Position, alpha, beta int) int {
	st.Nodes++

	stand := st.Eval.EvalCP(pos)
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	var moves []engine.Move
	engine.GenerateLegal(pos, &moves)

	sm := make([]scoredMove, 0, len(moves))
	for _, m := range moves {
		if !isCaptureLike(m) {
			continue
		}
		sm = append(sm, scoredMove{m, scoreMove(pos, st.Eval, m)})
	}
	sortMoves(sm)

	for _, x := range sm {
		u := pos.DoMove(x.move)
		st.Eval.OnMakeMove(pos, x.move)

		score := -qsearch(st, pos, -beta, -alpha)

		st.Eval.OnUnmakeMove(pos, x.move)
		pos.UndoMove(x.move, u)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// negamax is the main search recursion: transposition-table probe,
// quiescence handoff at the horizon, move ordering, late-move
// reductions with re-search, and extensions.
func negamax(st *State, pos *engine.Position, depth, alpha, beta, ply int) int {
	if st.timeUp() {
		return 0
	}
	st.Nodes++

	alpha0 := alpha
	key := pos.Key

	var ttMove engine.Move
	if e, ok := st.TT.Probe(key); ok && int(e.depth) >= depth {
		ttMove = e.best
		ttScore := fromTTScore(int(e.score), ply)

		switch e.bound {
		case BoundExact:
			return ttScore
		case BoundLower:
			if ttScore > alpha {
				alpha = ttScore
			}
		case BoundUpper:
			if ttScore < beta {
				beta = ttScore
			}
		}
		if alpha >= beta {
			return ttScore
		}
	}

	if depth <= 0 {
		return qsearch(st, pos, alpha, beta)
	}

	var moves []engine.Move
	engine.GenerateLegal(pos, &moves)

	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove) {
			return -mate + ply
		}
		return 0
	}

	sm := make([]scoredMove, 0, len(moves))
	for _, m := range moves {
		s := scoreMove(pos, st.Eval, m)
		if m == ttMove {
			s += 10000000
		}
		sm = append(sm, scoredMove{m, s})
	}
	sortMoves(sm)

	var best engine.Move

	for idx, x := range sm {
		if st.stopped {
			break
		}
		m := x.move

		cap := isCaptureLike(m)
		ext := extensionFor(m)
		red := lmrReduction(depth, idx, cap)

		u := pos.DoMove(m)
		st.Eval.OnMakeMove(pos, m)

		var score int
		if red > 0 {
			score = -negamax(st, pos, depth-1-red+ext, -beta, -alpha, ply+1)
			if score > alpha {
				score = -negamax(st, pos, depth-1+ext, -beta, -alpha, ply+1)
			}
		} else {
			score = -negamax(st, pos, depth-1+ext, -beta, -alpha, ply+1)
		}

		st.Eval.OnUnmakeMove(pos, m)
		pos.UndoMove(m, u)

		if score >= beta {
			st.TT.Store(key, depth, BoundLower, score, m, ply)
			return beta
		}
		if score > alpha {
			alpha = score
			best = m
		}
	}

	bound := BoundUpper
	if alpha > alpha0 {
		bound = BoundExact
	}
	st.TT.Store(key, depth, bound, alpha, best, ply)

	return alpha
}

// Think runs iterative deepening negamax from pos's current position to
// lim.MaxDepth (or until lim.MoveTime / ctx expires), and returns the
// best move and score found by the deepest completed iteration.
//
// Search is single-threaded end to end: ctx only ever causes an early
// stop, it never spawns concurrent work.
func Think(ctx context.Context, pos *engine.Position, tt *TranspositionTable, lim Limits) Result {
	st := newStateWithWeights(tt, lim.Weights)
	st.Eval.Init(pos)
	st.ctx = ctx

	st.start = time.Now()
	if lim.MoveTime > 0 {
		st.hasLimit = true
		st.deadline = st.start.Add(lim.MoveTime)
	}
	st.TT.NewSearch()

	var res Result

	var root []engine.Move
	engine.GenerateLegal(pos, &root)

	if len(root) == 0 {
		res.Best = engine.NoMove
		if pos.InCheck(pos.SideToMove) {
			res.ScoreCP = -mate + 1
		}
		res.Elapsed = st.elapsed()
		return res
	}

	var rootTTMove engine.Move
	if e, ok := st.TT.Probe(pos.Key); ok {
		rootTTMove = e.best
	}

	maxDepth := lim.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 64
	}

	prevScore := 0

	for d := 1; d <= maxDepth; d++ {
		if st.timeUp() {
			break
		}

		alpha, beta := -inf, inf
		if d >= 3 {
			const window = 35
			alpha = prevScore - window
			beta = prevScore + window
		}
		aspAlpha, aspBeta := alpha, beta

		sm := make([]scoredMove, 0, len(root))
		for _, m := range root {
			s := scoreMove(pos, st.Eval, m)
			if m == rootTTMove {
				s += 10000000
			}
			if m == res.Best {
				s += 5000000
			}
			sm = append(sm, scoredMove{m, s})
		}
		sortMoves(sm)

		bestMove, bestScore := searchRoot(st, pos, sm, d, alpha, beta)

		aspirationFailed := d >= 3 && !st.stopped && (bestScore <= aspAlpha || bestScore >= aspBeta)
		if aspirationFailed {
			bestMove, bestScore = searchRoot(st, pos, sm, d, -inf, inf)
		}

		if !st.stopped {
			res.Best = bestMove
			res.ScoreCP = bestScore
			res.Depth = d
			prevScore = bestScore
			rootTTMove = bestMove
			moveToFront(root, bestMove)
		}
	}

	res.Nodes = st.Nodes
	res.Elapsed = st.elapsed()
	return res
}

func searchRoot(st *State, pos *engine.Position, sm []scoredMove, depth, alpha, beta int) (engine.Move, int) {
	bestMove := sm[0].move
	bestScore := -inf

	for _, x := range sm {
		if st.stopped {
			break
		}
		m := x.move

		u := pos.DoMove(m)
		st.Eval.OnMakeMove(pos, m)

		score := -negamax(st, pos, depth-1, -beta, -alpha, 1)

		st.Eval.OnUnmakeMove(pos, m)
		pos.UndoMove(m, u)

		if st.stopped {
			break
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return bestMove, bestScore
}

func moveToFront(moves []engine.Move, m engine.Move) {
	for i, mv := range moves {
		if mv == m {
			copy(moves[1:i+1], moves[0:i])
			moves[0] = m
			return
		}
	}
}
