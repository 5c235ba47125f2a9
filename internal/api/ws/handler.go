package ws

import (
	"log"
	"net/http"

	"chiller-sim/internal/sim"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler serves the live-tuning socket: every client message carries a full
// parameter set, every reply carries the full recomputed result, so a slider
// UI can rerun the simulation on each change.
type Handler struct {
	engine *sim.Engine
}

func NewHandler() *Handler {
	return &Handler{engine: sim.New()}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg TuneMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		reply := h.run(msg)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}

func (h *Handler) run(msg TuneMessage) interface{} {
	result, err := h.engine.Run(sim.Params{
		TimeScaleMinutes: msg.TimeScaleMinutes,
		Kp:               msg.Kp,
		Ki:               msg.Ki,
		SampleCount:      msg.SampleCount,
		CustomLoad:       msg.CustomLoad,
	})
	if err != nil {
		return ErrorMessage{Type: TypeError, Message: err.Error()}
	}
	return NewResultMessage(result, msg.IncludeTrace)
}
