package ws

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"ocavior-site/lib/content"
	connectionhub "ocavior-site/lib/ws/hub/connection-hub"
	wsmodels "ocavior-site/models/ws"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, ctx context.Context) string {
	content.NewHandler()
	connectionhub.Init(ctx)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	wsApp := fiber.New()
	InitWs(ctx, wsApp)
	app.Mount("/ws", wsApp)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return ln.Addr().String()
}

func TestCarouselStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr := startServer(t, ctx)

	t.Run(`mount select and unmount`, func(t *testing.T) {
		conn, _, err := fastws.DefaultDialer.Dial(fmt.Sprintf("ws://%s/ws/carousel/features", addr), nil)
		require.Nil(t, err)

		var msg wsmodels.CarouselMessage
		require.Nil(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		require.Nil(t, conn.ReadJSON(&msg))
		require.Equal(t, wsmodels.CarouselMessage{Carousel: "features", Index: 0, Size: 3}, msg)

		require.Nil(t, conn.WriteJSON(map[string]int{"select": 2}))
		require.Nil(t, conn.ReadJSON(&msg))
		require.Equal(t, 2, msg.Index)

		require.Nil(t, conn.WriteJSON(map[string]int{"select": 9}))
		var errMsg wsmodels.ErrorMessage
		require.Nil(t, conn.ReadJSON(&errMsg))
		require.Equal(t, "features", errMsg.Carousel)
		require.NotEmpty(t, errMsg.Error)

		require.Equal(t, 1, connectionhub.Instance.Count())
		require.Nil(t, conn.Close())
		require.Eventually(t, func() bool { return connectionhub.Instance.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run(`unknown carousel`, func(t *testing.T) {
		_, resp, err := fastws.DefaultDialer.Dial(fmt.Sprintf("ws://%s/ws/carousel/pricing", addr), nil)
		require.NotNil(t, err)
		require.NotNil(t, resp)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
