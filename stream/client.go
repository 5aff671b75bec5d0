package stream

import (
	"context"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// Result is everything a server sent for one request.
type Result struct {
	Session string
	SeedKey int
	Values  []float64
}

// Fetch dials a stream server and collects the values it sends for req.
func Fetch(ctx context.Context, rawURL string, req Request) (*Result, error) {
	if req.Count < 1 {
		return nil, errors.Errorf("count %d out of range", req.Count)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse url %q", rawURL)
	}
	u.RawQuery = req.Query().Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", u.Redacted())
	}
	defer conn.Close()

	if dl, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(dl)
	}
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	res := &Result{Values: make([]float64, 0, req.Count)}
	for {
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, errors.Wrap(err, "read frame")
		}
		if f.Error != "" {
			return nil, errors.Errorf("session %s: %s", f.Session, f.Error)
		}
		res.Session = f.Session
		res.SeedKey = f.SeedKey
		res.Values = append(res.Values, f.Values...)
		if f.Done {
			return res, nil
		}
	}
}
