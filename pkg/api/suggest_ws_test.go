package api

import (
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestSuggestWebsocket(t *testing.T) {
	_, web := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(web.URL, "http") + "/ws/suggest"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing suggest websocket: %v", err)
	}
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	queries := []struct {
		query string
		want  []string
	}{
		{"ch", []string{"Chad", "Chile", "China"}},
		{"chi", []string{"Chile", "China"}},
		{"zz", nil},
	}

	for _, q := range queries {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(q.query)); err != nil {
			t.Fatalf("sending query %q: %v", q.query, err)
		}

		var result SuggestResponse
		if err := conn.ReadJSON(&result); err != nil {
			t.Fatalf("reading reply for %q: %v", q.query, err)
		}
		if result.Query != q.query {
			t.Errorf("reply echoes %q, expected %q", result.Query, q.query)
		}
		if result.Count != len(q.want) {
			t.Fatalf("query %q: expected %d suggestions, got %d", q.query, len(q.want), result.Count)
		}
		for i, name := range q.want {
			if result.Suggestions[i].Country.CommonName != name {
				t.Errorf("query %q suggestion %d: expected %s, got %s", q.query, i, name, result.Suggestions[i].Country.CommonName)
			}
		}
	}
}
