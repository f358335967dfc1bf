package websocket

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/irlink/pkg/bridge"
	fx "github.com/robotalks/irlink/pkg/framework"
)

// DefaultBacklog is the number of messages queued per client before new
// ones are dropped for it.
const DefaultBacklog = 64

// Hub serves websocket clients. Every message published on a topic
// ending with the rx suffix is broadcast as a binary frame to all clients.
// Binary frames sent by a client are dispatched to subscribers of the tx
// topic of Device.
type Hub struct {
	Addr    string
	Device  string
	Backlog int

	clients  map[*client]struct{}
	handlers map[*subscription]bridge.Handler
	lock     sync.RWMutex
}

type client struct {
	conn  *websocket.Conn
	outCh chan []byte
}

type subscription struct {
	hub   *Hub
	topic string
}

// NewHub creates a Hub.
func NewHub(addr, device string) *Hub {
	return &Hub{
		Addr:     addr,
		Device:   device,
		Backlog:  DefaultBacklog,
		clients:  make(map[*client]struct{}),
		handlers: make(map[*subscription]bridge.Handler),
	}
}

// Handler returns the http.Handler serving the websocket endpoints.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/"+bridge.RxSuffix, websocket.Handler(h.serve))
	return mux
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.clients)
}

// Publish implements bridge.Publisher. A slow client misses messages
// instead of blocking the publisher.
func (h *Hub) Publish(topic string, payload []byte) error {
	if !strings.HasSuffix(topic, "/"+bridge.RxSuffix) && topic != bridge.RxSuffix {
		return nil
	}
	h.lock.RLock()
	defer h.lock.RUnlock()
	for c := range h.clients {
		select {
		case c.outCh <- payload:
		default:
			glog.Warningf("websocket %s: drop message", c.conn.Request().RemoteAddr)
		}
	}
	return nil
}

// Subscribe implements bridge.Subscriber.
func (h *Hub) Subscribe(topic string, handler bridge.Handler) (io.Closer, error) {
	sub := &subscription{hub: h, topic: topic}
	h.lock.Lock()
	h.handlers[sub] = handler
	h.lock.Unlock()
	return sub, nil
}

func (s *subscription) Close() error {
	s.hub.lock.Lock()
	delete(s.hub.handlers, s)
	s.hub.lock.Unlock()
	return nil
}

func (h *Hub) dispatch(payload []byte) {
	topic := bridge.TxTopic(h.Device)
	var handlers []bridge.Handler
	h.lock.RLock()
	for sub, handler := range h.handlers {
		if sub.topic == topic {
			handlers = append(handlers, handler)
		}
	}
	h.lock.RUnlock()
	for _, handler := range handlers {
		handler(topic, payload)
	}
}

func (h *Hub) serve(conn *websocket.Conn) {
	backlog := h.Backlog
	if backlog <= 0 {
		backlog = DefaultBacklog
	}
	c := &client{conn: conn, outCh: make(chan []byte, backlog)}
	remote := conn.Request().RemoteAddr
	h.lock.Lock()
	h.clients[c] = struct{}{}
	h.lock.Unlock()
	glog.V(2).Infof("websocket %s connected", remote)

	doneCh := make(chan struct{})
	go func() {
		defer close(doneCh)
		for {
			var pkt []byte
			if err := websocket.Message.Receive(conn, &pkt); err != nil {
				if err != io.EOF {
					glog.V(2).Infof("websocket %s: %v", remote, err)
				}
				return
			}
			h.dispatch(pkt)
		}
	}()

	defer func() {
		h.lock.Lock()
		delete(h.clients, c)
		h.lock.Unlock()
		conn.Close()
		glog.V(2).Infof("websocket %s disconnected", remote)
	}()
	for {
		select {
		case <-doneCh:
			return
		case pkt := <-c.outCh:
			if err := websocket.Message.Send(conn, pkt); err != nil {
				glog.V(2).Infof("websocket %s: %v", remote, err)
				return
			}
		}
	}
}

// Name implements framework.Named.
func (h *Hub) Name() string {
	return "websocket"
}

// Run serves on Addr until ctx is done. It implements framework.Runnable.
func (h *Hub) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.Addr)
	if err != nil {
		return err
	}
	glog.Infof("websocket listening on %s", ln.Addr())
	server := &http.Server{Handler: h.Handler()}
	return fx.RunWithContextCloser(ctx, server, func() error {
		err := server.Serve(ln)
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	})
}
