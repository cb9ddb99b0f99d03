package state

import (
	"fmt"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"rtfc/rtf"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:           time.Now(),
		DefaultEncoding: charmap.Windows1252,
	}
}

// ResolveEncoding returns encoding for IANA name. Names known to the index
// but not implemented are reported as errors.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown text encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("text encoding %q is not supported", name)
	}
	return enc, nil
}

// Prepare applies loaded configuration to the environment.
func (e *LocalEnv) Prepare() error {
	if e.Cfg == nil {
		return nil
	}
	enc, err := ResolveEncoding(e.Cfg.Parser.DefaultTextEncoding)
	if err != nil {
		return err
	}
	e.DefaultEncoding = enc
	e.Format = e.Cfg.Output.Format
	e.Overwrite = e.Cfg.Output.Overwrite
	return nil
}

// ParserOptions returns options for a new parsing session.
func (e *LocalEnv) ParserOptions() rtf.Options {
	opts := rtf.Options{DefaultEncoding: e.DefaultEncoding}
	if e.Cfg != nil {
		opts.CheckStyleAttr = e.Cfg.Parser.CheckStyleAttributes
		opts.MaxChildren = e.Cfg.Parser.MaxChildren
		opts.NewDocument = e.Cfg.Parser.NewDocument
	}
	return opts
}
