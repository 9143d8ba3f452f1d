package model

// MoveRecord is one entry of the chronological move log. Immutable once
// appended; Restart replaces the whole log.
type MoveRecord struct {
	MoveNumber int    `json:"moveNumber"`
	Color      Color  `json:"color"`
	From       string `json:"from"`
	To         string `json:"to"`
	Capture    bool   `json:"capture"`
	Promotion  string `json:"promotion,omitempty"`
	// Piece is the moved piece as it was before any promotion.
	Piece Piece `json:"piece"`
}

// OccupiedSquare is one entry of the sparse board projection.
type OccupiedSquare struct {
	Position string `json:"position"`
	Piece    Piece  `json:"piece"`
}

// GameState is the read projection served to clients.
type GameState struct {
	Board       []OccupiedSquare `json:"board"`
	CurrentTurn Color            `json:"current_turn"`
	GameStatus  GameStatus       `json:"game_status"`
}
