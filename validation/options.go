package validation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Option func(o *Options)

type Options struct {
	Printer *message.Printer
}

// WithLanguage renders violation messages in the given language.
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) {
		o.Printer = message.NewPrinter(tag)
	}
}

func NewOptions(opts ...Option) *Options {
	o := &Options{
		Printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
