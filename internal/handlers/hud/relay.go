package hud

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	"github.com/KirkDiggler/tool-replenish/internal/events"
)

const (
	// MessageTypeConnected is the first frame every client receives
	MessageTypeConnected = "connected"

	sendBuffer   = 16
	writeTimeout = 5 * time.Second
)

// Message is the JSON frame pushed to HUD clients
type Message struct {
	Type           string                     `json:"type"`
	ProfileID      string                     `json:"profile_id"`
	AttemptID      string                     `json:"attempt_id,omitempty"`
	Units          map[string]int             `json:"units,omitempty"`
	CurrencyDebits map[tools.CurrencyKind]int `json:"currency_debits,omitempty"`
	ReserveDebits  map[string]int             `json:"reserve_debits,omitempty"`
	Force          bool                       `json:"force,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Relay forwards tool events from the bus to websocket clients watching
// the same profile
type Relay struct {
	mu       sync.Mutex
	clients  map[string]map[*client]struct{}
	upgrader websocket.Upgrader
}

var _ events.EventListener = (*Relay)(nil)

// NewRelay creates a relay with no clients
func NewRelay() *Relay {
	return &Relay{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Register subscribes the relay to every tool event
func (r *Relay) Register(bus *events.Bus) {
	bus.Subscribe(events.EventTypeToolBindingsChanged, r)
	bus.Subscribe(events.EventTypeEquippedSetChanged, r)
	bus.Subscribe(events.EventTypeToolsReplenished, r)
}

func (r *Relay) ID() string    { return "hud-relay" }
func (r *Relay) Priority() int { return 200 }

// HandleEvent implements events.EventListener. Slow clients drop frames
// rather than block the emitter.
func (r *Relay) HandleEvent(event events.Event) error {
	msg := Message{
		Type:      string(event.GetType()),
		ProfileID: event.GetProfileID(),
	}
	switch e := event.(type) {
	case *events.EquippedSetChangedEvent:
		msg.Force = e.Force
	case *events.ToolsReplenishedEvent:
		msg.AttemptID = e.AttemptID
		msg.Units = e.Units
		msg.CurrencyDebits = e.CurrencyDebits
		msg.ReserveDebits = e.ReserveDebits
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for c := range r.clients[msg.ProfileID] {
		select {
		case c.send <- data:
		default:
			log.Printf("HUD: dropping %s frame for slow client on %s", msg.Type, msg.ProfileID)
		}
	}
	return nil
}

// ServeHTTP upgrades a request for ?profile=ID to a HUD stream
func (r *Relay) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	profileID := req.URL.Query().Get("profile")
	if profileID == "" {
		http.Error(w, "missing profile", http.StatusBadRequest)
		return
	}

	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("HUD: upgrade failed for %s: %v", profileID, err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if hello, err := json.Marshal(Message{Type: MessageTypeConnected, ProfileID: profileID}); err == nil {
		c.send <- hello
	}
	r.add(profileID, c)
	go c.writeLoop()

	// Clients never talk back; reading only detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	r.remove(profileID, c)
}

// ClientCount returns how many clients watch a profile
func (r *Relay) ClientCount(profileID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients[profileID])
}

// Close disconnects every client
func (r *Relay) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for profileID, set := range r.clients {
		for c := range set {
			close(c.send)
		}
		delete(r.clients, profileID)
	}
}

func (r *Relay) add(profileID string, c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clients[profileID] == nil {
		r.clients[profileID] = make(map[*client]struct{})
	}
	r.clients[profileID][c] = struct{}{}
	log.Printf("HUD: client connected for %s", profileID)
}

func (r *Relay) remove(profileID string, c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.clients[profileID]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(r.clients, profileID)
	}
	close(c.send)
	log.Printf("HUD: client disconnected for %s", profileID)
}

// writeLoop owns all writes to the connection and closes it when send is closed
func (c *client) writeLoop() {
	defer c.conn.Close()

	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
