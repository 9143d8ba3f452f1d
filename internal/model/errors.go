package model

import (
	"errors"
	"fmt"
)

// Every way a move request can be rejected. Rejections are ordinary
// error values so callers pick them apart with errors.Is; none of them
// mutate game state.
var (
	ErrGameNotInProgress   = errors.New("game is not in progress")
	ErrSameSquare          = errors.New("from and to squares must be different")
	ErrInvalidSquare       = errors.New("invalid square")
	ErrIndexOutOfBounds    = errors.New("index out of bounds")
	ErrEmptySource         = errors.New("no piece at source square")
	ErrWrongTurn           = errors.New("wrong turn")
	ErrFriendlyCapture     = errors.New("cannot capture your own piece")
	ErrIllegalPieceMove    = errors.New("illegal piece move")
	ErrInvalidPromotion    = errors.New("invalid promotion piece, use one of: q, r, b, n")
	ErrPromotionNotAllowed = errors.New("promotion is only allowed when a pawn reaches the last rank")
)

// Sub-reasons of ErrIllegalPieceMove, kept distinct so tests and
// clients can tell a blocked slider from a malformed pattern.
var (
	ErrPathBlocked        = fmt.Errorf("%w: path is blocked", ErrIllegalPieceMove)
	ErrIllegalPawnMove    = fmt.Errorf("%w: illegal pawn move", ErrIllegalPieceMove)
	ErrIllegalPawnCapture = fmt.Errorf("%w: illegal pawn capture", ErrIllegalPieceMove)
	ErrPawnBlocked        = fmt.Errorf("%w: pawn move blocked", ErrIllegalPieceMove)
)

var ruleErrors = []struct {
	err  error
	code string
}{
	{ErrGameNotInProgress, "game_not_in_progress"},
	{ErrSameSquare, "same_square"},
	{ErrInvalidSquare, "invalid_square"},
	{ErrIndexOutOfBounds, "index_out_of_bounds"},
	{ErrEmptySource, "empty_source"},
	{ErrWrongTurn, "wrong_turn"},
	{ErrFriendlyCapture, "friendly_capture"},
	{ErrIllegalPieceMove, "illegal_piece_move"},
	{ErrInvalidPromotion, "invalid_promotion"},
	{ErrPromotionNotAllowed, "promotion_not_allowed"},
}

// IsRuleError reports whether err is one of the move rejections above,
// as opposed to an unexpected internal failure.
func IsRuleError(err error) bool {
	for _, re := range ruleErrors {
		if errors.Is(err, re.err) {
			return true
		}
	}
	return false
}

// ErrorCode returns the stable wire code for a rule error, or "" when
// err is not one.
func ErrorCode(err error) string {
	for _, re := range ruleErrors {
		if errors.Is(err, re.err) {
			return re.code
		}
	}
	return ""
}
