package stream

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tutils/mrgrand/mrg"
)

// Distributions
const (
	Uniform = "uniform"
	Normal  = "normal"
)

// default request values
var (
	DefaultCount = 10
	DefaultBatch = 100
)

// Request describes the samples a client asks for. It travels as query
// parameters of the websocket URL.
type Request struct {
	Dist string
	// SeedKey of 0 lets the server seed from its clock.
	SeedKey int

	Mean, StdDev float64
	Low, High    float64

	Count int
	Batch int
}

// NewRequest returns a request for count values of dist with default
// distribution parameters.
func NewRequest(dist string, count int) Request {
	return Request{
		Dist:   dist,
		StdDev: mrg.DefaultStdDev,
		Low:    mrg.DefaultUniformLow,
		High:   mrg.DefaultUniformHigh,
		Count:  count,
		Batch:  DefaultBatch,
	}
}

// Frame is one JSON message sent from server to client.
type Frame struct {
	Session string    `json:"session"`
	SeedKey int       `json:"seedKey,omitempty"`
	Seq     int       `json:"seq"`
	Values  []float64 `json:"values,omitempty"`
	Done    bool      `json:"done,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Query encodes r as URL query parameters.
func (r Request) Query() url.Values {
	q := url.Values{}
	q.Set("dist", r.Dist)
	if r.SeedKey != 0 {
		q.Set("seed", strconv.Itoa(r.SeedKey))
	}
	q.Set("mean", strconv.FormatFloat(r.Mean, 'g', -1, 64))
	q.Set("stddev", strconv.FormatFloat(r.StdDev, 'g', -1, 64))
	q.Set("low", strconv.FormatFloat(r.Low, 'g', -1, 64))
	q.Set("high", strconv.FormatFloat(r.High, 'g', -1, 64))
	q.Set("count", strconv.Itoa(r.Count))
	if r.Batch > 0 {
		q.Set("batch", strconv.Itoa(r.Batch))
	}
	return q
}

// ParseRequest decodes query parameters, filling in defaults for missing ones.
func ParseRequest(q url.Values) (Request, error) {
	r := NewRequest(Uniform, DefaultCount)
	if d := q.Get("dist"); d != "" {
		r.Dist = d
	}
	if r.Dist != Uniform && r.Dist != Normal {
		return r, errors.Errorf("unknown dist %q", r.Dist)
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"seed", &r.SeedKey},
		{"count", &r.Count},
		{"batch", &r.Batch},
	}
	for _, p := range ints {
		s := q.Get(p.name)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return r, errors.Wrapf(err, "parse %s", p.name)
		}
		*p.dst = v
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"mean", &r.Mean},
		{"stddev", &r.StdDev},
		{"low", &r.Low},
		{"high", &r.High},
	}
	for _, p := range floats {
		s := q.Get(p.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return r, errors.Wrapf(err, "parse %s", p.name)
		}
		*p.dst = v
	}

	if r.Batch <= 0 {
		r.Batch = DefaultBatch
	}
	return r, nil
}

// Generator builds the generator serving r.
func (r Request) Generator() (*mrg.Generator, error) {
	opts := []mrg.Option{
		mrg.WithNormal(r.Mean, r.StdDev),
		mrg.WithUniform(r.Low, r.High),
	}
	if r.SeedKey != 0 {
		opts = append(opts, mrg.WithSeedKey(r.SeedKey))
	}
	return mrg.New(opts...)
}
