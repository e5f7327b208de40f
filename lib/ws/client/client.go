package wsclient

import (
	"encoding/json"

	"ocavior-site/lib/carousel"
	connectionhub "ocavior-site/lib/ws/hub/connection-hub"
	wsmodels "ocavior-site/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type reader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

func NewClient(name string, conn reader, car *carousel.Carousel, out connectionhub.Sender) *WsClient {
	return &WsClient{
		conn:     conn,
		name:     name,
		carousel: car,
		out:      out,
		logger:   log.WithField("carousel", name),
	}
}

// WsClient applies client selections to its carousel until the connection is closed.
type WsClient struct {
	conn     reader
	name     string
	carousel *carousel.Carousel
	out      connectionhub.Sender
	logger   *log.Entry
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

func (c *WsClient) Dispatch() {
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				c.logger.WithError(err).Debug("error reading ws message")
			}
			return
		}
		if err = c.handle(data); err != nil {
			c.logger.WithError(err).Debug("ws message rejected")
			c.out.Send(wsmodels.ErrorMessage{Carousel: c.name, Error: err.Error()})
		}
	}
}

func (c *WsClient) handle(data []byte) error {
	var msg wsmodels.ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return errors.New("message must be a JSON object")
	}
	if msg.Select == nil {
		return errors.New("unsupported message")
	}
	return c.carousel.Select(*msg.Select)
}
