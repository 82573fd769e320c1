package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamebox/internal/arcade"
	"gamebox/internal/connect"
	"gamebox/internal/stats"
)

type frame struct {
	Type    string         `json:"type"`
	GameID  string         `json:"gameId"`
	Kind    string         `json:"kind"`
	State   map[string]any `json:"state"`
	Message string         `json:"message"`
}

func newFeedServer(t *testing.T) (*httptest.Server, *Handler, *arcade.Session) {
	t.Helper()

	g, err := connect.New(connect.Config{
		Width: 3, Height: 3, WinLength: 3,
		Players: []connect.PlayerConfig{{Type: connect.Human}, {Type: connect.Human}},
	})
	require.NoError(t, err)

	m := arcade.NewManager()
	s := m.CreateConnect(g)
	h := NewHandler(NewHub(), m, stats.NewRecorder(), nil)

	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(srv.Close)
	return srv, h, s
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()

	var f frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestJoinPushesStateAndStats(t *testing.T) {
	srv, _, s := newFeedServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "join", "gameId": s.ID}))

	first := readFrame(t, conn)
	assert.Equal(t, "state", first.Type)
	assert.Equal(t, s.ID, first.GameID)
	assert.Equal(t, "connect", first.Kind)

	second := readFrame(t, conn)
	assert.Equal(t, "stats", second.Type)
}

func TestMoveBroadcastsToWatcher(t *testing.T) {
	srv, _, s := newFeedServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "join", "gameId": s.ID}))
	readFrame(t, conn)
	readFrame(t, conn)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "move", "row": 0, "col": 0}))

	got := map[string]frame{}
	for i := 0; i < 2; i++ {
		f := readFrame(t, conn)
		got[f.Type] = f
	}
	require.Contains(t, got, "state")
	require.Contains(t, got, "stats")
	assert.Equal(t, float64(1), got["state"].State["turnCount"])
}

func TestInvalidMoveOnlyErrorsSender(t *testing.T) {
	srv, _, s := newFeedServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "join", "gameId": s.ID}))
	readFrame(t, conn)
	readFrame(t, conn)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "move", "row": 9, "col": 9}))

	f := readFrame(t, conn)
	assert.Equal(t, "error", f.Type)
	assert.Equal(t, connect.ErrOutOfBounds.Error(), f.Message)
}

func TestIntentBeforeJoinRejected(t *testing.T) {
	srv, _, _ := newFeedServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "move", "row": 0, "col": 0}))

	f := readFrame(t, conn)
	assert.Equal(t, "error", f.Type)
}

func TestJoinUnknownGame(t *testing.T) {
	srv, _, _ := newFeedServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "join", "gameId": "nope"}))

	f := readFrame(t, conn)
	assert.Equal(t, "error", f.Type)
}

func TestCloseSessionsDropsWatchers(t *testing.T) {
	srv, h, s := newFeedServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "join", "gameId": s.ID}))
	readFrame(t, conn)
	readFrame(t, conn)

	h.Hub.CloseSessions([]string{s.ID})

	f := readFrame(t, conn)
	assert.Equal(t, "expired", f.Type)
	assert.Zero(t, h.Hub.Len())
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://games.example.com"})

	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.Header.Set("Origin", "https://games.example.com")
	assert.True(t, check(r))

	r.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(r))

	assert.True(t, originChecker(nil)(r))
}
