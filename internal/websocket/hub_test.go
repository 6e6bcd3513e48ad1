package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		conn: nil,
		send: make(chan []byte, sendBufferSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub)
	c2 := mockClient(hub)

	hub.Register(c1)
	hub.Register(c2)

	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}

	hub.Unregister(c1)

	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", got)
	}

	hub.Unregister(c2)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub)
	hub.Register(c)
	hub.Unregister(c)
	// Should not panic
	hub.Unregister(c)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestBroadcastReachesUnsubscribedClients(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub)
	c2 := mockClient(hub)
	hub.Register(c1)
	hub.Register(c2)

	msg := NewMessage("menu_items", "created", "item-42")
	hub.Broadcast(msg)

	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.send:
			var got Message
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Type != "menu_items_created" {
				t.Errorf("expected type menu_items_created, got %s", got.Type)
			}
			if got.Table != "menu_items" {
				t.Errorf("expected table menu_items, got %s", got.Table)
			}
			if got.ID != "item-42" {
				t.Errorf("expected id item-42, got %s", got.ID)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timeout waiting for message")
		}
	}

	hub.Unregister(c1)
	hub.Unregister(c2)
}

func TestBroadcastFiltersBySubscription(t *testing.T) {
	hub := NewHub(slog.Default())

	menuOnly := mockClient(hub)
	menuOnly.Subscribe(Subscription{Table: "menu_items", Event: "*"})
	settingsOnly := mockClient(hub)
	settingsOnly.Subscribe(Subscription{Table: "user_settings", Event: "updated", UserID: "user-1"})

	hub.Register(menuOnly)
	hub.Register(settingsOnly)

	hub.Broadcast(NewMessage("menu_items", "deleted", "item-1"))

	select {
	case <-menuOnly.send:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("menu subscriber did not receive menu change")
	}

	select {
	case <-settingsOnly.send:
		t.Fatal("settings subscriber received menu change")
	default:
	}

	settingsMsg := NewMessage("user_settings", "updated", "")
	settingsMsg.UserID = "user-1"
	hub.Broadcast(settingsMsg)

	select {
	case <-settingsOnly.send:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("settings subscriber did not receive settings update")
	}
}

func TestSubscriptionMatches(t *testing.T) {
	menuAll := Subscription{Table: "menu_items", Event: "*"}
	settingsUpdate := Subscription{Table: "user_settings", Event: "updated", UserID: "user-1"}

	for _, action := range []string{"created", "updated", "deleted", "reordered"} {
		if !menuAll.Matches(NewMessage("menu_items", action, "x")) {
			t.Errorf("wildcard subscription rejected action %q", action)
		}
	}

	if menuAll.Matches(NewMessage("user_settings", "updated", "")) {
		t.Error("menu subscription matched settings table")
	}

	otherUser := NewMessage("user_settings", "updated", "")
	otherUser.UserID = "user-2"
	if settingsUpdate.Matches(otherUser) {
		t.Error("settings subscription matched another user's row")
	}

	wrongEvent := NewMessage("user_settings", "deleted", "")
	wrongEvent.UserID = "user-1"
	if settingsUpdate.Matches(wrongEvent) {
		t.Error("settings subscription matched a non-update event")
	}
}

func TestBroadcastEmptyHub(t *testing.T) {
	hub := NewHub(slog.Default())
	// Should not panic
	hub.Broadcast(NewMessage("menu_items", "updated", "item-1"))
}

func TestBroadcastFullBuffer(t *testing.T) {
	hub := NewHub(slog.Default())

	c := mockClient(hub)
	hub.Register(c)

	// Fill the send buffer
	for i := 0; i < sendBufferSize; i++ {
		hub.Broadcast(NewMessage("menu_items", "updated", "fill"))
	}

	// This should drop the message, not panic or block
	hub.Broadcast(NewMessage("menu_items", "updated", "dropped"))

	count := 0
	for {
		select {
		case <-c.send:
			count++
		default:
			goto done
		}
	}
done:
	if count != sendBufferSize {
		t.Errorf("expected %d messages, got %d", sendBufferSize, count)
	}

	hub.Unregister(c)
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("menu_items", "reordered", "")
	if msg.Type != "menu_items_reordered" {
		t.Errorf("expected type menu_items_reordered, got %s", msg.Type)
	}
	if msg.Table != "menu_items" {
		t.Errorf("expected table menu_items, got %s", msg.Table)
	}
	if msg.Action != "reordered" {
		t.Errorf("expected action reordered, got %s", msg.Action)
	}
}

func TestConcurrentAccess(t *testing.T) {
	hub := NewHub(slog.Default())
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := mockClient(hub)
			c.Subscribe(Subscription{Table: "menu_items", Event: "*"})
			hub.Register(c)
			hub.Broadcast(NewMessage("menu_items", "updated", "concurrent"))
			for {
				select {
				case <-c.send:
				default:
					hub.Unregister(c)
					return
				}
			}
		}()
	}

	wg.Wait()

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("expected 0 clients after concurrent test, got %d", got)
	}
}
