package stream

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

type addr struct {
	url *url.URL
}

func (a *addr) String() string {
	return a.url.String()
}

func (a *addr) host() string {
	return a.url.Host
}

func (a *addr) uri() string {
	return a.url.RequestURI()
}

func newAddr(rawURL string) (*addr, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse listen address %q", rawURL)
	}
	return &addr{url: u}, nil
}

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

var _ http.Handler = &Server{}

// Server streams generator output to websocket clients. Every connection
// owns its own generator.
type Server struct {
	opts ServerOptions
	srv  *http.Server
}

// NewServer create a new Server
func NewServer(opts ...ServerOption) *Server {
	opt := newServerOptions(opts...)
	return &Server{opts: *opt}
}

func (s *Server) logf(format string, args ...interface{}) {
	if s.opts.errorLog != nil {
		s.opts.errorLog.Printf(format, args...)
	} else {
		log.Printf(format, args...)
	}
}

// ListenAndServe listens on the host of the listen address and serves
// websocket upgrades on its path.
func (s *Server) ListenAndServe() error {
	a, err := newAddr(s.opts.addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(a.uri(), s)
	s.srv = &http.Server{
		Addr:    a.host(),
		Handler: mux,
	}
	s.logf("stream server listening on %s", a)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops a server started with ListenAndServe.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	session := uuid.New().String()[:8] // Use first 8 chars of UUID for brevity

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
	done := make(chan struct{})
	defer close(done)
	go startPing(conn, done)
	go discardReads(conn)

	if err := s.serve(conn, session, r.URL.Query()); err != nil {
		s.logf("session %s: %v", session, err)
		conn.WriteJSON(&Frame{Session: session, Error: err.Error()})
	}

	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
}

func (s *Server) serve(conn *websocket.Conn, session string, q url.Values) error {
	req, err := ParseRequest(q)
	if err != nil {
		return err
	}
	if req.Count < 1 || req.Count > s.opts.maxCount {
		return errors.Errorf("count %d out of range [1, %d]", req.Count, s.opts.maxCount)
	}
	if req.Batch > req.Count {
		req.Batch = req.Count
	}
	gen, err := req.Generator()
	if err != nil {
		return err
	}
	s.logf("session %s: %s x%d seed key %d", session, req.Dist, req.Count, gen.SeedKey())

	fill := gen.UniformAt
	if req.Dist == Normal {
		fill = gen.NormalAt
	}

	buf := make([]float64, req.Batch)
	for seq, sent := 0, 0; sent < req.Count; seq++ {
		n := req.Batch
		if rest := req.Count - sent; rest < n {
			n = rest
		}
		fill(buf[:n])
		sent += n

		frame := &Frame{
			Session: session,
			SeedKey: gen.SeedKey(),
			Seq:     seq,
			Values:  buf[:n],
			Done:    sent == req.Count,
		}
		if s.opts.counter != nil {
			s.opts.counter.Add(int64(n))
		}
		if err := conn.WriteJSON(frame); err != nil {
			return errors.Wrap(err, "write frame")
		}
	}
	return nil
}

// discardReads drains client messages so control frames are processed.
func discardReads(conn *websocket.Conn) {
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
