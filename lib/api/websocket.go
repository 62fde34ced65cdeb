package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/learnopengl/learnopengl/lib/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

const writeTimeout = 10 * time.Second

// handleWebsocket streams stats to the client until it goes away.
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade already replied to the client
		log.Module("api").Warn("couldn't make websocket", "err", err)
		return
	}
	a.addClient(ws)
	defer a.removeClient(ws)

	done := make(chan struct{})
	defer close(done)
	go a.websocketWriter(ws, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		log.Module("api").Debug("websocket message", "msg", string(msg))
	}
}

func (a *Api) addClient(ws *websocket.Conn) {
	a.wsClientsMutex.Lock()
	defer a.wsClientsMutex.Unlock()
	a.wsClients[ws] = true
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) removeClient(ws *websocket.Conn) {
	a.wsClientsMutex.Lock()
	defer a.wsClientsMutex.Unlock()
	delete(a.wsClients, ws)
	a.Stats.SetWsClients(len(a.wsClients))
	err := ws.Close()
	if err != nil {
		log.Module("api").Debug("could not close websocket", "err", err)
	}
}

func (a *Api) websocketWriter(ws *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(a.StatsInterval)
	defer ticker.Stop()

	for {
		if err := a.writeStats(ws); err != nil {
			log.Module("api").Debug("websocket write failed", "err", err)
			return
		}
		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

func (a *Api) writeStats(ws *websocket.Conn) error {
	packet, err := json.Marshal(a.Stats.Snapshot())
	if err != nil {
		return fmt.Errorf("could not encode stats: %w", err)
	}
	err = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}
	return ws.WriteMessage(websocket.TextMessage, packet)
}
