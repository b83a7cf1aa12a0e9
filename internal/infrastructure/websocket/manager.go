package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// Client is one live subscriber of the price feed.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte

	mu       sync.RWMutex
	products map[string]struct{}

	// done is closed once the manager drops the client. Send is never closed
	// because ReadPump also writes to it.
	done     chan struct{}
	stopOnce sync.Once
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
		Send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *Client) stop() {
	c.stopOnce.Do(func() {
		if c.done != nil {
			close(c.done)
		}
	})
}

// wants reports whether the client subscribed to productID. No subscription means everything.
func (c *Client) wants(productID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.products) == 0 {
		return true
	}
	_, ok := c.products[productID]
	return ok
}

func (c *Client) subscribe(productIDs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		c.products[id] = struct{}{}
	}
}

type outbound struct {
	productID string
	payload   []byte
}

// Manager fans price updates out to every connected client.
type Manager struct {
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan outbound
	done       chan struct{}
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan outbound, 256),
		done:       make(chan struct{}),
	}
}

// Start runs the manager's main loop in a goroutine until ctx is done.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = struct{}{}
				m.mutex.Unlock()
				logger.Debug("Price feed client registered: %s", client.ID)

			case client := <-m.Unregister:
				m.remove(client)
				logger.Debug("Price feed client unregistered: %s", client.ID)

			case msg := <-m.broadcast:
				m.mutex.RLock()
				var slow []*Client
				for client := range m.clients {
					if !client.wants(msg.productID) {
						continue
					}
					select {
					case client.Send <- msg.payload:
					default:
						slow = append(slow, client)
					}
				}
				m.mutex.RUnlock()
				for _, client := range slow {
					m.remove(client)
				}

			case <-ctx.Done():
				close(m.done)
				m.mutex.Lock()
				for client := range m.clients {
					delete(m.clients, client)
					client.stop()
				}
				m.mutex.Unlock()
				return
			}
		}
	}()
}

// Add registers client, returning false once the manager has stopped.
func (m *Manager) Add(client *Client) bool {
	select {
	case m.Register <- client:
		return true
	case <-m.done:
		return false
	}
}

func (m *Manager) remove(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, ok := m.clients[client]; ok {
		delete(m.clients, client)
		client.stop()
	}
}

// ClientCount returns the number of connected subscribers.
func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// PublishPriceUpdate queues update for delivery. It never blocks the caller; when the
// queue is full the update is dropped.
func (m *Manager) PublishPriceUpdate(update service.PriceUpdate) {
	payload, err := json.Marshal(newMessage(MessageTypePriceUpdate, update))
	if err != nil {
		logger.Error("Failed to encode price update for %s: %v", update.ProductID, err)
		return
	}

	select {
	case m.broadcast <- outbound{productID: update.ProductID, payload: payload}:
	default:
		logger.Warn("Price feed queue full, dropping update for %s", update.ProductID)
	}
}

// ReadPump reads control messages from the connection until it closes.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		select {
		case m.Unregister <- c:
		case <-m.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(4096)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Price feed read error for %s: %v", c.ID, err)
			}
			return
		}

		if reply := c.handleMessage(message); reply != nil {
			select {
			case <-c.done:
				return
			default:
			}
			select {
			case c.Send <- reply:
			case <-c.done:
				return
			default:
			}
		}
	}
}

// WritePump sends queued messages and keepalive pings to the connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("Price feed write error for %s: %v", c.ID, err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
