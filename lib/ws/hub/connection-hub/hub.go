package connectionhub

import (
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Provider keeps the open carousel connections and serializes writes per connection.
type Provider interface {
	AddClient(clientID string, conn *websocket.Conn) Sender
	DeleteClient(clientID string)
	IsConnected(clientID string) bool
	Count() int
}

// Sender queues a message for a single connection.
type Sender interface {
	Send(msg any)
}

var Instance Provider

func Init(ctx context.Context) {
	Instance = newImpl(ctx)
}

func newImpl(ctx context.Context) *impl {
	return &impl{
		ctx:     ctx,
		clients: map[string]*clientSession{},
	}
}

type impl struct {
	ctx     context.Context
	mu      sync.Mutex
	clients map[string]*clientSession
}

type sender struct {
	sess *clientSession
}

func (s sender) Send(msg any) {
	s.sess.offer(msg)
}

func (i *impl) AddClient(clientID string, conn *websocket.Conn) Sender {
	return i.addClient(clientID, conn)
}

func (i *impl) addClient(clientID string, c conn) Sender {
	i.mu.Lock()
	oldSess, ok := i.clients[clientID]
	sess := newSession(i.ctx, c)
	i.clients[clientID] = sess
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
	return sender{sess: sess}
}

func (i *impl) DeleteClient(clientID string) {
	i.mu.Lock()
	sess, ok := i.clients[clientID]
	if ok {
		delete(i.clients, clientID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
	<-sess.done
}

func (i *impl) IsConnected(clientID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, ok := i.clients[clientID]
	return ok
}

func (i *impl) Count() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.clients)
}
