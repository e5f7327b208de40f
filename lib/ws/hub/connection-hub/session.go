package connectionhub

import (
	"context"
	"time"

	wsmodels "ocavior-site/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type conn interface {
	WriteJSON(v interface{}) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
}

type clientSession struct {
	conn conn

	// Carousel state. Only the latest matters, so a pending state is replaced
	// instead of queued behind.
	sendCh chan any
	// Replies to the client (errors). Never coalesced.
	replyCh chan any
	ctx     context.Context
	stop    func()
	done    chan struct{}
}

const replyQueueSize = 8

func newSession(ctx context.Context, c conn) *clientSession {
	ctx, cancelFn := context.WithCancel(ctx)
	sess := &clientSession{
		stop:    cancelFn,
		conn:    c,
		sendCh:  make(chan any, 1),
		replyCh: make(chan any, replyQueueSize),
		ctx:     ctx,
		done:    make(chan struct{}),
	}
	go sess.startSend(ctx)
	return sess
}

func (s *clientSession) offer(msg any) {
	if _, ok := msg.(wsmodels.CarouselMessage); !ok {
		s.enqueue(msg)
		return
	}
	for {
		select {
		case s.sendCh <- msg:
			return
		default:
		}
		select {
		case <-s.sendCh:
		default:
		}
	}
}

func (s *clientSession) enqueue(msg any) {
	select {
	case s.replyCh <- msg:
	case <-s.ctx.Done():
	}
}

func (s *clientSession) startSend(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case msg := <-s.replyCh:
			s.write(msg)
		case msg := <-s.sendCh:
			s.write(msg)
		}
	}
}

func (s *clientSession) write(msg any) {
	if err := s.send(msg); err != nil {
		log.WithError(err).Warn("error sending ws message")
	}
}

func (s *clientSession) send(msg interface{}) error {
	if s.conn == nil {
		return nil
	}
	if wsConn, ok := s.conn.(*websocket.Conn); ok && wsConn.Conn == nil {
		return nil
	}
	return s.conn.WriteJSON(msg)
}

func (s *clientSession) close() {
	if s.conn == nil {
		return
	}
	if wsConn, ok := s.conn.(*websocket.Conn); ok && wsConn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	if err != nil {
		log.WithError(err).Debug("error writing ws close message")
	}
}
