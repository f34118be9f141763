package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/LAES18/proyecto-automatas/models"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsClient struct {
	conn   *websocket.Conn
	userID uint
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]wsClient)
)

// HandleWebSocket upgrades an authenticated connection and keeps it
// registered for broadcasts until the client disconnects. Browsers cannot set
// the Authorization header on websockets, so the middleware also accepts the
// token as a query parameter.
func HandleWebSocket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	wsMu.Lock()
	wsClients[conn] = wsClient{conn: conn, userID: userID}
	wsMu.Unlock()

	defer func() {
		wsMu.Lock()
		delete(wsClients, conn)
		wsMu.Unlock()
		conn.Close()
	}()

	// Drain until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastReading pushes a stored reading to every connected client.
func BroadcastReading(reading models.SensorReading) {
	msg, _ := json.Marshal(gin.H{"type": "lectura", "data": reading})
	broadcast(msg, nil)
}

// BroadcastAlert notifies the users who configured a device that one of its
// readings fell outside the configured plant ranges.
func BroadcastAlert(reading models.SensorReading, measurement string, ownerIDs []uint) {
	owners := make(map[uint]bool, len(ownerIDs))
	for _, id := range ownerIDs {
		owners[id] = true
	}
	msg, _ := json.Marshal(gin.H{
		"type":        "alerta",
		"message":     "Lectura fuera de rango",
		"measurement": measurement,
		"data":        reading,
	})
	broadcast(msg, owners)
}

// broadcast writes to connected clients, dropping any connection that fails.
// A nil filter reaches everyone.
func broadcast(msg []byte, only map[uint]bool) {
	wsMu.Lock()
	defer wsMu.Unlock()
	for conn, client := range wsClients {
		if only != nil && !only[client.userID] {
			continue
		}
		if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			client.conn.Close()
			delete(wsClients, conn)
		}
	}
}
