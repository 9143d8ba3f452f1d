package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestAlgebraicRoundTrip(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq, err := IndexToAlgebraic(row, col)
			if err != nil {
				t.Fatalf("IndexToAlgebraic(%d, %d): %v", row, col, err)
			}
			r, c, err := AlgebraicToIndex(sq)
			if err != nil {
				t.Fatalf("AlgebraicToIndex(%q): %v", sq, err)
			}
			if r != row || c != col {
				t.Fatalf("round trip %q: got (%d, %d), want (%d, %d)", sq, r, c, row, col)
			}
		}
	}
}

func TestAlgebraicToIndexKnownSquares(t *testing.T) {
	tests := []struct {
		square string
		row    int
		col    int
	}{
		{"a8", 0, 0},
		{"h8", 0, 7},
		{"a1", 7, 0},
		{"h1", 7, 7},
		{"e2", 6, 4},
		{"E2", 6, 4}, // file letter is case-insensitive
		{"d5", 3, 3},
	}
	for _, tt := range tests {
		row, col, err := AlgebraicToIndex(tt.square)
		if err != nil {
			t.Fatalf("AlgebraicToIndex(%q): %v", tt.square, err)
		}
		if row != tt.row || col != tt.col {
			t.Fatalf("AlgebraicToIndex(%q) = (%d, %d), want (%d, %d)", tt.square, row, col, tt.row, tt.col)
		}
	}
}

func TestAlgebraicToIndexRejectsMalformedSquares(t *testing.T) {
	for _, square := range []string{"", "e", "e22", "i2", "e9", "e0", "22", "ee", "2e", "é2"} {
		_, _, err := AlgebraicToIndex(square)
		if !errors.Is(err, ErrInvalidSquare) {
			t.Fatalf("AlgebraicToIndex(%q) = %v, want ErrInvalidSquare", square, err)
		}
	}
}

func TestIndexToAlgebraicRejectsOutOfBounds(t *testing.T) {
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {12, 12}} {
		_, err := IndexToAlgebraic(idx[0], idx[1])
		if !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("IndexToAlgebraic(%d, %d) = %v, want ErrIndexOutOfBounds", idx[0], idx[1], err)
		}
	}
}

func TestNewBoardStandardLayout(t *testing.T) {
	board := newBoard()

	count := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if board[row][col] != nil {
				count++
			}
		}
	}
	if count != 32 {
		t.Fatalf("expected 32 pieces, got %d", count)
	}

	for col, want := range backRank {
		if p := board.at(0, col); p == nil || p.Type != want || p.Color != Black {
			t.Fatalf("row 0 col %d: got %+v, want black %s", col, p, want)
		}
		if p := board.at(7, col); p == nil || p.Type != want || p.Color != White {
			t.Fatalf("row 7 col %d: got %+v, want white %s", col, p, want)
		}
	}
	for col := 0; col < 8; col++ {
		if p := board.at(1, col); p == nil || p.Type != Pawn || p.Color != Black {
			t.Fatalf("row 1 col %d: got %+v, want black pawn", col, p)
		}
		if p := board.at(6, col); p == nil || p.Type != Pawn || p.Color != White {
			t.Fatalf("row 6 col %d: got %+v, want white pawn", col, p)
		}
	}
}

func TestOccupiedSquaresSparseProjection(t *testing.T) {
	board := newBoard()
	squares := board.occupiedSquares()
	if len(squares) != 32 {
		t.Fatalf("expected 32 occupied squares, got %d", len(squares))
	}

	byPosition := make(map[string]Piece, len(squares))
	for _, sq := range squares {
		byPosition[sq.Position] = sq.Piece
	}
	for _, tt := range []struct {
		position string
		piece    Piece
	}{
		{"e1", Piece{Type: King, Color: White}},
		{"d8", Piece{Type: Queen, Color: Black}},
		{"a2", Piece{Type: Pawn, Color: White}},
		{"h7", Piece{Type: Pawn, Color: Black}},
	} {
		if got, ok := byPosition[tt.position]; !ok || got != tt.piece {
			t.Fatalf("square %s: got %+v, want %+v", tt.position, got, tt.piece)
		}
	}
	if _, ok := byPosition["e4"]; ok {
		t.Fatalf("e4 should be empty in the initial position")
	}
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{ErrSameSquare, "same_square"},
		{ErrInvalidSquare, "invalid_square"},
		{ErrPathBlocked, "illegal_piece_move"},
		{ErrPawnBlocked, "illegal_piece_move"},
		{fmt.Errorf("%w: illegal knight move", ErrIllegalPieceMove), "illegal_piece_move"},
		{ErrInvalidPromotion, "invalid_promotion"},
		{errors.New("disk on fire"), ""},
	}
	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.code {
			t.Fatalf("ErrorCode(%v) = %q, want %q", tt.err, got, tt.code)
		}
	}
	if IsRuleError(errors.New("disk on fire")) {
		t.Fatalf("arbitrary errors must not count as rule errors")
	}
	if !IsRuleError(ErrIllegalPawnCapture) {
		t.Fatalf("pawn capture rejection should count as a rule error")
	}
}
