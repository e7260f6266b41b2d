package backend

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

// WatchOrders dials the backend's live order feed and invokes handle
// for every order the backend broadcasts, until ctx is cancelled or the
// connection drops.
func (c *Client) WatchOrders(ctx context.Context, handle func(model.Order)) error {
	token := c.tokens.Token()
	if token == "" {
		return ErrUnauthorized
	}

	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/api/admin/orders/ws"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return ErrUnauthorized
		}
		return err
	}
	defer conn.Close()

	// Unblock the read loop when the caller gives up.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		var raw rawOrder
		if err := conn.ReadJSON(&raw); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		handle(raw.toModel())
	}
}
