package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Piece is a plain value; a promoted pawn is replaced by a new Piece,
// no identity is carried across moves.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

type GameStatus string

const StatusInProgress GameStatus = "in_progress"

// promotionTypes maps single-letter promotion codes to piece types.
var promotionTypes = map[string]PieceType{
	"q": Queen,
	"r": Rook,
	"b": Bishop,
	"n": Knight,
}
