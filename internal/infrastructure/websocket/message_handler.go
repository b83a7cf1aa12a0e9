package websocket

import (
	"encoding/json"
	"time"
)

const (
	MessageTypePing        = "ping"
	MessageTypePong        = "pong"
	MessageTypeSubscribe   = "subscribe"
	MessageTypeSubscribed  = "subscribed"
	MessageTypePriceUpdate = "price_update"
	MessageTypeError       = "error"
)

type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type incomingMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type SubscribeData struct {
	ProductIDs []string `json:"productIds"`
}

func newMessage(msgType string, data interface{}) WSMessage {
	return WSMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// handleMessage processes one client frame and returns the encoded reply, if any.
func (c *Client) handleMessage(raw []byte) []byte {
	var msg incomingMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return encode(newMessage(MessageTypeError, "invalid message format"))
	}

	switch msg.Type {
	case MessageTypePing:
		return encode(newMessage(MessageTypePong, nil))

	case MessageTypeSubscribe:
		var data SubscribeData
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				return encode(newMessage(MessageTypeError, "invalid subscribe payload"))
			}
		}
		c.subscribe(data.ProductIDs)
		return encode(newMessage(MessageTypeSubscribed, data))

	default:
		return encode(newMessage(MessageTypeError, "unknown message type: "+msg.Type))
	}
}

func encode(msg WSMessage) []byte {
	payload, _ := json.Marshal(msg)
	return payload
}
