package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rferrer/mundi/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The API is CORS-open; the suggest stream carries no credentials.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSuggestWS streams autocomplete results over a websocket: every text
// frame from the client is a query, every reply a SuggestResponse. This lets
// the browse page suggest per keystroke without a request per key.
func (s *Server) HandleSuggestWS(w http.ResponseWriter, r *http.Request) {
	l := log.ForComponent("api")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.Debugf("suggest websocket upgrade failed: %v", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				l.Debugf("suggest websocket closed: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		query := string(msg)
		suggestions := s.catalog.Suggest(query)
		out := make([]SuggestionResponse, len(suggestions))
		for i, sg := range suggestions {
			out[i] = SuggestionResponse{
				Country:    toCountryResponse(sg.Country),
				MatchStart: sg.MatchStart,
				MatchLen:   sg.MatchLen,
			}
		}

		resp := SuggestResponse{Query: query, Suggestions: out, Count: len(out)}
		if err := conn.WriteJSON(resp); err != nil {
			l.Debugf("suggest websocket write failed: %v", err)
			return
		}
	}
}
