package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/studysense/goEmotionFusion/foundation/external/dashboard"
)

func TestSendData(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}
	received := make(chan []byte, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		defer conn.Close()

		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Error(err)
			return
		}
		received <- msg
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	sock, err := dashboard.New("ws", u.Host, "/fusion", "secret")
	if err != nil {
		t.Fatal(err)
	}
	defer sock.Close()

	data := dashboard.EmotionData{
		SessionID:  "s-1",
		DataID:     "d-1",
		Emotion:    "focused",
		Confidence: 0.9,
	}
	if err := sock.SendData(dashboard.EmotionEvent, data); err != nil {
		t.Fatal(err)
	}

	var frame struct {
		Event string                `json:"event"`
		Data  dashboard.EmotionData `json:"data"`
	}
	if err := json.Unmarshal(<-received, &frame); err != nil {
		t.Fatal(err)
	}
	if frame.Event != string(dashboard.EmotionEvent) {
		t.Fatalf("got event %q, want %q", frame.Event, dashboard.EmotionEvent)
	}
	if frame.Data.Emotion != "focused" {
		t.Fatalf("got emotion %q, want %q", frame.Data.Emotion, "focused")
	}
}
