package model

import "fmt"

// validatePieceMove checks the piece-type movement pattern for a move
// from (fr) to (to). It never touches the board; capture tells it
// whether the destination holds an enemy piece.
func (b *Board) validatePieceMove(piece *Piece, fr, to square, capture bool, promotion string) error {
	dr := to.row - fr.row
	dc := to.col - fr.col

	switch piece.Type {
	case Pawn:
		return b.validatePawnMove(piece, fr, to, dr, dc, capture, promotion)

	case Knight:
		if !(abs(dr) == 1 && abs(dc) == 2) && !(abs(dr) == 2 && abs(dc) == 1) {
			return fmt.Errorf("%w: illegal knight move", ErrIllegalPieceMove)
		}
		return nil

	case Bishop:
		if abs(dr) != abs(dc) || dr == 0 {
			return fmt.Errorf("%w: illegal bishop move", ErrIllegalPieceMove)
		}
		return b.requireClearPath(fr, to)

	case Rook:
		if (dr != 0 && dc != 0) || (dr == 0 && dc == 0) {
			return fmt.Errorf("%w: illegal rook move", ErrIllegalPieceMove)
		}
		return b.requireClearPath(fr, to)

	case Queen:
		diagonal := abs(dr) == abs(dc) && dr != 0
		straight := (dr == 0) != (dc == 0)
		if !diagonal && !straight {
			return fmt.Errorf("%w: illegal queen move", ErrIllegalPieceMove)
		}
		return b.requireClearPath(fr, to)

	case King:
		if max(abs(dr), abs(dc)) != 1 {
			return fmt.Errorf("%w: illegal king move", ErrIllegalPieceMove)
		}
		return nil
	}

	return fmt.Errorf("%w: unknown piece type %q", ErrIllegalPieceMove, piece.Type)
}

// validatePawnMove covers single step, double step from the start rank,
// and diagonal captures. No en-passant.
func (b *Board) validatePawnMove(piece *Piece, fr, to square, dr, dc int, capture bool, promotion string) error {
	direction := 1 // black moves toward row 7
	startRow := 1
	if piece.Color == White {
		direction = -1 // white moves toward row 0
		startRow = 6
	}

	// A promotion code only makes sense when the pawn lands on the
	// last rank.
	if promotion != "" && to.row != 0 && to.row != 7 {
		return ErrPromotionNotAllowed
	}

	if capture {
		if dr != direction || abs(dc) != 1 {
			return ErrIllegalPawnCapture
		}
		return nil
	}

	if dc != 0 {
		return ErrIllegalPawnMove
	}

	if dr == direction {
		if b.at(to.row, to.col) != nil {
			return ErrPawnBlocked
		}
		return nil
	}

	if fr.row == startRow && dr == 2*direction {
		if b.at(fr.row+direction, fr.col) != nil {
			return ErrPawnBlocked
		}
		if b.at(to.row, to.col) != nil {
			return ErrPawnBlocked
		}
		return nil
	}

	return ErrIllegalPawnMove
}

// requireClearPath walks the squares strictly between fr and to along a
// straight or diagonal line and rejects the move if any is occupied.
func (b *Board) requireClearPath(fr, to square) error {
	stepRow := sign(to.row - fr.row)
	stepCol := sign(to.col - fr.col)

	for r, c := fr.row+stepRow, fr.col+stepCol; r != to.row || c != to.col; r, c = r+stepRow, c+stepCol {
		if b.at(r, c) != nil {
			return ErrPathBlocked
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
