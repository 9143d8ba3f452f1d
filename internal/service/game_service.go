package service

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/onechess/backend/internal/model"
	"github.com/onechess/backend/internal/ws"
)

// clientConn serializes writes to one WebSocket connection; the
// underlying connection supports only one concurrent writer.
type clientConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *clientConn) writeMessage(msg ws.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// GameService fronts the single shared game. It owns the set of live
// WebSocket connections and pushes a fresh state frame to all of them
// whenever the game changes.
type GameService struct {
	game *model.Game

	connMu      sync.RWMutex
	connections map[string]*clientConn // clientID -> connection
}

func NewGameService(game *model.Game) *GameService {
	return &GameService{
		game:        game,
		connections: make(map[string]*clientConn),
	}
}

func (gs *GameService) GetState() model.GameState {
	return gs.game.State()
}

func (gs *GameService) GetHistory() []model.MoveRecord {
	return gs.game.History()
}

// ApplyMove forwards the move to the game and, when it is accepted,
// broadcasts the resulting state to every connected client.
func (gs *GameService) ApplyMove(from, to, promotion string) (model.MoveRecord, error) {
	record, err := gs.game.ApplyMove(from, to, promotion)
	if err != nil {
		return model.MoveRecord{}, err
	}
	gs.broadcastState()
	return record, nil
}

func (gs *GameService) Restart() {
	gs.game.Restart()
	gs.broadcastState()
}

// RegisterConnection adds a client connection and immediately sends it
// the current state. A reconnecting client replaces its old connection.
func (gs *GameService) RegisterConnection(clientID string, conn *websocket.Conn) {
	client := &clientConn{conn: conn}

	gs.connMu.Lock()
	if old, ok := gs.connections[clientID]; ok {
		old.conn.Close()
	}
	gs.connections[clientID] = client
	gs.connMu.Unlock()

	msg, err := stateMessage(gs.game.State())
	if err != nil {
		log.Printf("marshal state: %v", err)
		return
	}
	if err := client.writeMessage(msg); err != nil {
		log.Printf("write state to %s: %v", clientID, err)
	}
}

// UnregisterConnection drops a client connection. It only removes the
// registered connection, so a replaced connection cannot unregister its
// successor.
func (gs *GameService) UnregisterConnection(clientID string, conn *websocket.Conn) {
	gs.connMu.Lock()
	defer gs.connMu.Unlock()
	if client, ok := gs.connections[clientID]; ok && client.conn == conn {
		delete(gs.connections, clientID)
	}
}

// broadcastState snapshots the registry before writing so slow clients
// never hold the lock, and writes go through each connection's own
// write mutex.
func (gs *GameService) broadcastState() {
	msg, err := stateMessage(gs.game.State())
	if err != nil {
		log.Printf("marshal state: %v", err)
		return
	}

	type target struct {
		clientID string
		client   *clientConn
	}
	gs.connMu.RLock()
	targets := make([]target, 0, len(gs.connections))
	for clientID, client := range gs.connections {
		targets = append(targets, target{clientID: clientID, client: client})
	}
	gs.connMu.RUnlock()

	for _, tgt := range targets {
		if err := tgt.client.writeMessage(msg); err != nil {
			log.Printf("write state to %s: %v", tgt.clientID, err)
		}
	}
}

// stateMessage wraps a state projection in a gameState frame.
func stateMessage(state model.GameState) (ws.Message, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return ws.Message{}, err
	}
	return ws.Message{Type: ws.MessageTypeGameState, Payload: payload}, nil
}
