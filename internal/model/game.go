package model

import (
	"fmt"
	"strings"
	"sync"
)

// Game is the single shared chess game. All operations take the mutex
// for their full duration: legality checks and the board writes they
// guard must be atomic with respect to other callers.
type Game struct {
	mu      sync.Mutex
	board   *Board
	turn    Color
	status  GameStatus
	history []MoveRecord
}

func NewGame() *Game {
	g := &Game{}
	g.reset()
	return g
}

// Restart resets the board to the standard initial position, sets white
// to move, and clears the move log. Always succeeds.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

func (g *Game) reset() {
	g.board = newBoard()
	g.turn = White
	g.status = StatusInProgress
	g.history = make([]MoveRecord, 0)
}

// State returns the sparse board projection plus turn and status.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return GameState{
		Board:       g.board.occupiedSquares(),
		CurrentTurn: g.turn,
		GameStatus:  g.status,
	}
}

// History returns a copy of the chronological move log.
func (g *Game) History() []MoveRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	history := make([]MoveRecord, len(g.history))
	copy(history, g.history)
	return history
}

// ApplyMove validates and applies a move for the side to move. The
// checks run in a fixed order so the same bad input always reports the
// same rejection, and the board is only written after every check has
// passed: a rejected move leaves the game exactly as it was.
func (g *Game) ApplyMove(from, to, promotion string) (MoveRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusInProgress {
		return MoveRecord{}, ErrGameNotInProgress
	}

	if strings.EqualFold(from, to) {
		return MoveRecord{}, ErrSameSquare
	}

	frRow, frCol, err := AlgebraicToIndex(from)
	if err != nil {
		return MoveRecord{}, err
	}
	toRow, toCol, err := AlgebraicToIndex(to)
	if err != nil {
		return MoveRecord{}, err
	}
	fr := square{row: frRow, col: frCol}
	dst := square{row: toRow, col: toCol}

	piece := g.board.at(fr.row, fr.col)
	if piece == nil {
		return MoveRecord{}, fmt.Errorf("%w: %s is empty", ErrEmptySource, strings.ToLower(from))
	}
	if piece.Color != g.turn {
		return MoveRecord{}, fmt.Errorf("%w: it is %s's turn", ErrWrongTurn, g.turn)
	}

	target := g.board.at(dst.row, dst.col)
	if target != nil && target.Color == piece.Color {
		return MoveRecord{}, ErrFriendlyCapture
	}
	capture := target != nil

	promotion = strings.ToLower(promotion)
	if err := g.board.validatePieceMove(piece, fr, dst, capture, promotion); err != nil {
		return MoveRecord{}, err
	}

	// Resolve the promotion before touching the board so a bad code
	// cannot leave a half-applied move behind.
	placed := *piece
	promoted := ""
	if piece.Type == Pawn && (dst.row == 0 || dst.row == 7) {
		code := promotion
		if code == "" {
			code = "q"
		}
		newType, ok := promotionTypes[code]
		if !ok {
			return MoveRecord{}, ErrInvalidPromotion
		}
		placed = Piece{Type: newType, Color: piece.Color}
		promoted = code
	}

	record := MoveRecord{
		MoveNumber: len(g.history)/2 + 1,
		Color:      piece.Color,
		From:       strings.ToLower(from),
		To:         strings.ToLower(to),
		Capture:    capture,
		Promotion:  promoted,
		Piece:      *piece,
	}

	g.board[dst.row][dst.col] = &placed
	g.board[fr.row][fr.col] = nil
	g.history = append(g.history, record)
	g.turn = g.turn.Opponent()

	return record, nil
}
