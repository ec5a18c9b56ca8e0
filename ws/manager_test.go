package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// dialPair returns a connected client/server websocket pair.
func dialPair(t *testing.T) (client *websocket.Conn, server *websocket.Conn) {
	t.Helper()

	serverConns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, <-serverConns
}

func TestManager_RegisterAndSend(t *testing.T) {
	m := NewManager()
	client, server := dialPair(t)

	m.Register("u1", server)
	assert.True(t, m.IsConnected("u1"))
	assert.Equal(t, []string{"u1"}, m.List())

	require.NoError(t, m.SendToUser("u1", []byte(`{"kind":"workout"}`)))

	mt, payload, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, mt)
	assert.Equal(t, `{"kind":"workout"}`, string(payload))
}

func TestManager_ConcurrentSendsToOneConnection(t *testing.T) {
	m := NewManager()
	client, server := dialPair(t)

	m.Register("u1", server)

	const senders = 4
	const perSender = 100

	// Drain everything the senders write; corrupted frames would surface
	// as read errors here.
	done := make(chan error, 1)
	go func() {
		for i := 0; i < senders*perSender; i++ {
			if _, _, err := client.ReadMessage(); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	var wg sync.WaitGroup
	for g := 0; g < senders; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perSender; i++ {
				if err := m.SendToUser("u1", []byte(`{"kind":"workout"}`)); err != nil {
					t.Errorf("SendToUser: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.NoError(t, <-done)
}

func TestManager_SendToUnconnectedUser(t *testing.T) {
	m := NewManager()
	err := m.SendToUser("nobody", []byte("x"))
	require.Error(t, err)
}

func TestManager_RegisterReplacesExisting(t *testing.T) {
	m := NewManager()
	_, first := dialPair(t)
	client2, second := dialPair(t)

	m.Register("u1", first)
	m.Register("u1", second)

	// Still exactly one connection, and sends reach the new one
	assert.Equal(t, []string{"u1"}, m.List())
	require.NoError(t, m.SendToUser("u1", []byte("hello")))

	_, payload, err := client2.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(payload))
}

func TestManager_Unregister(t *testing.T) {
	m := NewManager()
	_, server := dialPair(t)

	m.Register("u1", server)
	m.Unregister("u1")
	assert.False(t, m.IsConnected("u1"))
	assert.Empty(t, m.List())
}
