package xor

import (
	"github.com/tutils/mrgrand/crypt"
)

type xorEncoderOptions struct {
	sourceNewer crypt.RandomSourceNewer
}

func newXorEncoderOptions(opts ...crypt.EncoderOption) *xorEncoderOptions {
	var opt xorEncoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.sourceNewer == nil {
		opt.sourceNewer = crypt.NewMRGSource
	}
	return &opt
}

// WithEncoderRandomSourceNewer replaces the keystream source of an encoder
func WithEncoderRandomSourceNewer(newer crypt.RandomSourceNewer) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.sourceNewer = newer
		}
	}
}

type xorDecoderOptions struct {
	sourceNewer crypt.RandomSourceNewer
}

func newXorDecoderOptions(opts ...crypt.DecoderOption) *xorDecoderOptions {
	var opt xorDecoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.sourceNewer == nil {
		opt.sourceNewer = crypt.NewMRGSource
	}
	return &opt
}

// WithDecoderRandomSourceNewer replaces the keystream source of a decoder
func WithDecoderRandomSourceNewer(newer crypt.RandomSourceNewer) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.sourceNewer = newer
		}
	}
}
