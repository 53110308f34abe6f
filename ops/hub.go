package ops

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/sparklean/cleaning-app/models"
)

// Event types pushed to operator dashboards
const (
	EventOrderCreated     = "order_created"
	EventOrderUpdate      = "order_update"
	EventOrderDeleted     = "order_deleted"
	EventModerationNeeded = "moderation_needed"
	EventOperatorNotif    = "operator_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua koneksi dashboard operator beserta role-nya
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var opsHub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	opsHub.mutex.Lock()
	defer opsHub.mutex.Unlock()
	opsHub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	opsHub.mutex.Lock()
	defer opsHub.mutex.Unlock()
	delete(opsHub.clients, conn)
	conn.Close()
}

// BroadcastOrderCreated -> order baru masuk (status created)
func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{
		Event: EventOrderCreated,
		Data:  order,
	})
}

// BroadcastOrderUpdate -> menyiarkan update order ke semua client
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastOrderDeleted -> order dihapus (soft delete)
func BroadcastOrderDeleted(orderID uint) {
	broadcast(Message{
		Event: EventOrderDeleted,
		Data:  map[string]interface{}{"order_id": orderID},
	})
}

// BroadcastModerationNeeded -> order butuh penugasan manual
func BroadcastModerationNeeded(order models.Order) {
	broadcast(Message{
		Event: EventModerationNeeded,
		Data:  order,
	})
}

// BroadcastOperatorNotification -> notifikasi teks untuk operator
func BroadcastOperatorNotification(message string) {
	broadcast(Message{
		Event: EventOperatorNotif,
		Data:  message,
	})
}

// broadcast -> fungsi internal untuk mengirim pesan
func broadcast(msg Message) {
	opsHub.mutex.Lock()
	defer opsHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn, role := range opsHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to %s client: %v", role, err)
			continue
		}
	}
}
