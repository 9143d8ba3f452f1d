package model

import "fmt"

// Board is the 8x8 grid. Row 0 is rank 8 (black's back rank), row 7 is
// rank 1; column 0 is file 'a'. A nil cell is an empty square.
type Board [8][8]*Piece

// square is an internal board coordinate, already bounds-checked.
type square struct {
	row, col int
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() *Board {
	board := &Board{}
	for col, pt := range backRank {
		board[0][col] = &Piece{Type: pt, Color: Black}
		board[7][col] = &Piece{Type: pt, Color: White}
	}
	for col := 0; col < 8; col++ {
		board[1][col] = &Piece{Type: Pawn, Color: Black}
		board[6][col] = &Piece{Type: Pawn, Color: White}
	}
	return board
}

func (b *Board) at(row, col int) *Piece {
	return b[row][col]
}

// occupiedSquares lists every occupied square in row-major order, the
// sparse projection served to clients.
func (b *Board) occupiedSquares() []OccupiedSquare {
	squares := make([]OccupiedSquare, 0, 32)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b[row][col]
			if piece == nil {
				continue
			}
			pos, _ := IndexToAlgebraic(row, col)
			squares = append(squares, OccupiedSquare{Position: pos, Piece: *piece})
		}
	}
	return squares
}

// AlgebraicToIndex converts a square like "e2" to (row, col). The file
// letter is case-insensitive.
func AlgebraicToIndex(square string) (int, int, error) {
	if len(square) != 2 {
		return 0, 0, fmt.Errorf("%w: %q must be in algebraic form like e2", ErrInvalidSquare, square)
	}
	file := square[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	rank := square[1]
	if file < 'a' || file > 'h' {
		return 0, 0, fmt.Errorf("%w: file in %q must be between a and h", ErrInvalidSquare, square)
	}
	if rank < '1' || rank > '8' {
		return 0, 0, fmt.Errorf("%w: rank in %q must be between 1 and 8", ErrInvalidSquare, square)
	}
	col := int(file - 'a')
	row := 8 - int(rank-'0')
	return row, col, nil
}

// IndexToAlgebraic is the inverse of AlgebraicToIndex. The bounds check
// should be unreachable for squares produced by the engine itself.
func IndexToAlgebraic(row, col int) (string, error) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return "", fmt.Errorf("%w: (%d, %d)", ErrIndexOutOfBounds, row, col)
	}
	return fmt.Sprintf("%c%d", 'a'+col, 8-row), nil
}
