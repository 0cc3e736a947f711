package draft

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamRequest is the incoming WebSocket message format. One message
// starts one paper generation run.
type streamRequest struct {
	Topic      string           `json:"topic"`
	PaperType  string           `json:"paper_type"`
	Literature []LiteratureItem `json:"literature"`
}

// streamEvent is the outgoing WebSocket message format.
type streamEvent struct {
	Type     string            `json:"type"` // "progress", "section", "done" or "error"
	Section  string            `json:"section,omitempty"`
	Current  int               `json:"current,omitempty"`
	Total    int               `json:"total,omitempty"`
	Content  string            `json:"content,omitempty"`
	Sections map[string]string `json:"sections,omitempty"`
	Order    []string          `json:"order,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// StreamHandler serves the drafting WebSocket. Each request on the
// connection generates a full paper and streams per-section progress.
func StreamHandler(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("draft: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("draft: websocket read: %v", err)
				}
				return
			}

			var req streamRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendEvent(conn, streamEvent{Type: "error", Error: "invalid message format"})
				continue
			}
			if req.Topic == "" {
				sendEvent(conn, streamEvent{Type: "error", Error: "topic is required"})
				continue
			}

			runGeneration(conn, r, gen, req)
		}
	}
}

func runGeneration(conn *websocket.Conn, r *http.Request, gen *Generator, req streamRequest) {
	progress := func(current, total int, section string) {
		sendEvent(conn, streamEvent{
			Type:    "progress",
			Section: section,
			Current: current,
			Total:   total,
		})
	}

	paper := gen.GeneratePaper(r.Context(), req.Topic, PaperType(req.PaperType), req.Literature, progress)

	for _, section := range paper.Order {
		sendEvent(conn, streamEvent{
			Type:    "section",
			Section: section,
			Content: paper.Sections[section],
		})
	}
	sendEvent(conn, streamEvent{
		Type:     "done",
		Sections: paper.Sections,
		Order:    paper.Order,
	})
}

func sendEvent(conn *websocket.Conn, ev streamEvent) {
	if err := conn.WriteJSON(ev); err != nil {
		log.Printf("draft: websocket write: %v", err)
	}
}
