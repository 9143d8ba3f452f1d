package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/onechess/backend/internal/model"
	"github.com/onechess/backend/internal/service"
	"github.com/onechess/backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established.
// The client gets the current state on connect and a fresh state frame
// after every accepted move or restart; it may also submit moves itself.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	clientID, _ := c.Locals("wsClientID").(string)
	if clientID == "" {
		log.Println("websocket connection without client ID")
		c.Close()
		return
	}

	wsc.gameService.RegisterConnection(clientID, c)
	defer wsc.gameService.UnregisterConnection(clientID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			continue
		}

		if err := wsc.handleMessage(msg); err != nil {
			wsc.sendError(c, err)
		}
	}
}

func (wsc *WebSocketController) handleMessage(msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := wsc.gameService.ApplyMove(move.From, move.To, move.Promotion)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, err error) {
	msg, merr := errorMessage(err)
	if merr != nil {
		log.Printf("marshal error payload: %v", merr)
		return
	}
	if werr := c.WriteJSON(msg); werr != nil {
		log.Printf("write error: %v", werr)
	}
}

// errorMessage wraps a rejection in an error frame, carrying the wire
// code when the error is a rule rejection.
func errorMessage(err error) (ws.Message, error) {
	payload, merr := json.Marshal(ws.ErrorPayload{
		Error: err.Error(),
		Code:  model.ErrorCode(err),
	})
	if merr != nil {
		return ws.Message{}, merr
	}
	return ws.Message{Type: ws.MessageTypeError, Payload: payload}, nil
}
