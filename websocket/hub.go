package websocket

import "encoding/json"

// Hub fans hooping-status events out to every connected client. Clients
// only subscribe; they never send application messages.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
}

type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type StatusChange struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	HoopingStatus string `json:"hooping_status"`
}

var HubInstance *Hub

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			for client := range h.clients {
				select {
				case client.Send <- data:
				default:
					delete(h.clients, client)
					close(client.Send)
				}
			}
		}
	}
}

func (h *Hub) Broadcast(event *Event) {
	select {
	case h.broadcast <- event:
	default:
	}
}

func InitHub() {
	HubInstance = NewHub()
	go HubInstance.Run()
}

// BroadcastStatusChange publishes a user's new hooping status to the feed.
// Safe to call before InitHub (drops the event).
func BroadcastStatusChange(userID, name, status string) {
	if HubInstance == nil {
		return
	}
	HubInstance.Broadcast(&Event{
		Event: "status-change",
		Data: StatusChange{
			UserID:        userID,
			Name:          name,
			HoopingStatus: status,
		},
	})
}
