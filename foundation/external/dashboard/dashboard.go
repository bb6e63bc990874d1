// Package dashboard pushes merged emotion updates to the UI dashboard over a
// websocket connection.
package dashboard

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
)

type Event string

const (
	SessionEvent   Event = "sendSessionData"
	EmotionEvent   Event = "sendEmotionUpdate"
	GuidanceEvent  Event = "sendGuidanceUpdate"
	KeepAliveEvent Event = "keepAlive"
)

type Socket struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func New(scheme, host, path, apiKey string) (*Socket, error) {
	u := url.URL{
		Scheme: scheme,
		Host:   host,
		Path:   path,
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), http.Header{"api-key": []string{apiKey}})
	if err != nil {
		return nil, err
	}

	return &Socket{conn: conn}, nil
}

// SendData writes one event frame. Safe for concurrent use; gorilla allows a
// single concurrent writer only.
func (s *Socket) SendData(e Event, d interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := struct {
		Event Event       `json:"event"`
		Data  interface{} `json:"data,omitempty"`
	}{
		Event: e,
		Data:  d,
	}

	return s.conn.WriteJSON(frame)
}

func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.Close()
}
