package search

import (
	"sync"
	"sync/atomic"
	"time"

	"chessgo/board"
	"chessgo/move"
)

// softDeadline is the between-iteration time budget from spec.md §4.5.
// It is checked only at depth boundaries, never mid-search, so a slow
// deep iteration can overrun it — accepted behavior per spec.md §9.
const softDeadline = 500 * time.Millisecond

// pollInterval is the worker's idle polling cadence from spec.md §5.
// A Think() call also wakes the worker immediately via thinkCh (thinking
// is set before the send), so this cadence only matters if the channel
// send is ever missed.
const pollInterval = 1 * time.Second

// AI owns a single background search worker, started at construction
// and stopped by Close. It never shares board data with the caller:
// Think hands the worker an owned clone, and GetBestMove only ever
// returns a move value.
type AI struct {
	thinkCh   chan *board.Board
	thinking  atomic.Bool
	foundMove atomic.Bool

	mu       sync.Mutex
	bestMove move.Move

	stop     chan struct{}
	closeDo  sync.Once
}

// New starts an AI's background worker and returns it ready to use.
func New() *AI {
	ai := &AI{
		thinkCh: make(chan *board.Board, 1),
		stop:    make(chan struct{}),
	}
	go ai.run()
	return ai
}

// Think snapshots board and asks the worker to start searching it. It
// must only be called when IsThinking reports false; a call while the
// worker is already thinking is ignored, matching spec.md §5's
// "UI must not submit a new think until is_thinking() becomes false".
func (ai *AI) Think(b *board.Board) {
	if ai.thinking.Load() {
		return
	}
	ai.foundMove.Store(false)
	snapshot := b.Clone()
	ai.thinking.Store(true)
	select {
	case ai.thinkCh <- snapshot:
	default:
	}
}

// IsThinking reports whether the worker is currently searching.
func (ai *AI) IsThinking() bool {
	return ai.thinking.Load()
}

// HasFoundMove reports whether a search has completed and GetBestMove
// has not yet been called for it.
func (ai *AI) HasFoundMove() bool {
	return ai.foundMove.Load()
}

// GetBestMove returns the move found by the most recently completed
// search and clears HasFoundMove. Callers should only call this once
// HasFoundMove reports true.
func (ai *AI) GetBestMove() move.Move {
	ai.mu.Lock()
	mv := ai.bestMove
	ai.mu.Unlock()
	ai.foundMove.Store(false)
	return mv
}

// Close stops the background worker. It is safe to call more than once.
func (ai *AI) Close() {
	ai.closeDo.Do(func() {
		close(ai.stop)
	})
}

func (ai *AI) run() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var pending *board.Board
	for {
		select {
		case <-ai.stop:
			return
		case b := <-ai.thinkCh:
			pending = b
		case <-ticker.C:
		}

		if pending == nil || !ai.thinking.Load() || ai.foundMove.Load() {
			continue
		}
		b := pending
		pending = nil

		best := iterativeDeepen(b)

		ai.mu.Lock()
		ai.bestMove = best
		ai.mu.Unlock()
		ai.foundMove.Store(true)
		ai.thinking.Store(false)
	}
}

// iterativeDeepen runs spec.md §4.5's iterative-deepening loop against
// its own board snapshot: depth 1, 2, 3, ... until a forced mate is
// found or the soft deadline elapses between iterations.
func iterativeDeepen(b *board.Board) move.Move {
	start := time.Now()
	best := move.Empty
	for depth := 1; ; depth++ {
		rootBest := move.Empty
		score := negamax(b, depth, -infinity, infinity, true, &rootBest)
		if !rootBest.IsEmpty() {
			best = rootBest
		}
		if score >= earlyStop {
			break
		}
		if time.Since(start) >= softDeadline {
			break
		}
	}
	return best
}
