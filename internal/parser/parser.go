// Package parser turns raw process arguments into a typed result according
// to a schema.
//
// Parsing runs in two phases. ParseOnly tokenizes in a single left-to-right
// pass, resolving aliases and routing into commands. PostProcess casts every
// value to its declared type, writes defaults, checks mandatory options and
// selects the callbacks to run. Either phase fails with a *usage.Error and
// never returns a partial result.
package parser

import (
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/values"
)

// Parser parses argument lists against one finished schema.
// It holds no per-parse state and may be used concurrently.
type Parser struct {
	schema *schema.Schema
	log    domain.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger receiving routing decisions at debug level.
func WithLogger(l domain.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a parser for s.
func New(s *schema.Schema, opts ...Option) *Parser {
	p := &Parser{schema: s, log: log.NopLogger{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Schema returns the schema the parser was built for.
func (p *Parser) Schema() *schema.Schema { return p.schema }

// ParseOnly tokenizes raw without casting or validating values.
// Strict mode and unknown commands are still enforced.
func (p *Parser) ParseOnly(raw []string) (*Raw, error) {
	p.log.Debug("tokenize %d arguments against %s", len(raw), describe(p.schema))

	tk := &tokenizer{p: p}
	if err := tk.run(p.schema, newDocument(), raw); err != nil {
		p.log.Debug("tokenize failed: %v", err)
		return nil, err
	}
	return &Raw{levels: tk.levels}, nil
}

// PostProcess casts, defaults and validates a tokenized result. raw is not
// modified, so it can be post-processed again.
func (p *Parser) PostProcess(raw *Raw) (*Outcome, error) {
	pp := &postprocessor{levels: raw.clone()}

	if err := pp.castAll(); err != nil {
		p.log.Debug("cast failed: %v", err)
		return nil, err
	}
	pp.invoke()
	pp.defaults()
	if err := pp.mandatory(); err != nil {
		p.log.Debug("validation failed: %v", err)
		return nil, err
	}

	out := pp.outcome()
	p.log.Debug("parsed %d keys, %d callbacks queued", len(out.Args), len(out.Queue))
	return out, nil
}

// Prepare parses raw and returns the result with its queued callbacks, without running them.
func (p *Parser) Prepare(raw []string) (*Outcome, error) {
	r, err := p.ParseOnly(raw)
	if err != nil {
		return nil, err
	}
	return p.PostProcess(r)
}

// Parse returns the validated result of raw. Callbacks are not run.
func (p *Parser) Parse(raw []string) (values.Map, error) {
	out, err := p.Prepare(raw)
	if err != nil {
		return nil, err
	}
	return out.Args, nil
}

// Run parses raw, then runs the queued callbacks.
func (p *Parser) Run(raw []string) (values.Map, error) {
	out, err := p.Prepare(raw)
	if err != nil {
		return nil, err
	}
	if err := out.Execute(); err != nil {
		return nil, err
	}
	return out.Args, nil
}

// Parse parses raw against s without logging.
func Parse(s *schema.Schema, raw []string) (values.Map, error) {
	return New(s).Parse(raw)
}

// Run parses raw against s and runs the queued callbacks.
func Run(s *schema.Schema, raw []string) (values.Map, error) {
	return New(s).Run(raw)
}
