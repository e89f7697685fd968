// Package pager streams a source file onto a Surface a screenful at a time,
// coloring each word by its highlight category.
package pager

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/phroun/cellpager"
	"github.com/phroun/cellpager/lexer"
	"github.com/phroun/cellpager/theme"
)

// DefaultIndicator is shown on the last row while waiting for a key.
const DefaultIndicator = "<-Press Any Key->"

// Options configures a Pager
type Options struct {
	Palette   theme.Palette // Category attributes (default: theme.Default())
	Indicator string        // Pause prompt (default: DefaultIndicator)
	Logger    *slog.Logger  // Run diagnostics (default: discarded)
}

// Stats summarizes a run
type Stats struct {
	Words int   // words written
	Pages int   // pause-and-clear cycles
	Bytes int64 // bytes consumed from the source
}

// Pager writes classified words to a surface, pausing whenever the cursor
// reaches the last row.
type Pager struct {
	surface cellpager.Surface
	options Options
	stats   Stats
}

// New creates a pager drawing on s
func New(s cellpager.Surface, opts Options) *Pager {
	if opts.Palette == nil {
		opts.Palette = theme.Default()
	}
	if opts.Indicator == "" {
		opts.Indicator = DefaultIndicator
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Pager{surface: s, options: opts}
}

// Run pages through r until it is exhausted, then shows the indicator on the
// last row and waits for one more key. Words are rendered in file order; a
// page break only clears the surface between two words.
//
// A read failure ends the stream early and is not reported as an error. A
// word that is not valid UTF-8 stops the run with an error wrapping
// lexer.ErrDecode.
func (p *Pager) Run(r io.Reader) error {
	logger := p.options.Logger
	tz := lexer.NewTokenizer(r)
	var state lexer.State
	p.stats = Stats{}

	p.surface.ClearScreen()
	for {
		tok, err := tz.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			p.stats.Bytes = tz.Offset()
			return fmt.Errorf("pager: %w", err)
		}

		if p.atLastRow() {
			if err := p.pause(); err != nil {
				return err
			}
			p.surface.ClearScreen()
			p.stats.Pages++
			logger.Debug("pager: page break", "page", p.stats.Pages, "offset", tz.Offset())
		}

		category := lexer.Classify(tok.Word, &state)
		attr := p.options.Palette.Attr(category)
		p.surface.WriteString(tok.Word, attr)
		p.surface.WriteString(delimiterText(tok.Delim), attr)
		p.stats.Words++
	}
	p.stats.Bytes = tz.Offset()
	if err := tz.Err(); err != nil {
		logger.Warn("pager: read failed, treating as end of file", "offset", tz.Offset(), "err", err)
	}

	_, rows := p.surface.GetSize()
	p.surface.SetCursor(0, rows-1)
	if err := p.pause(); err != nil {
		return err
	}
	logger.Debug("pager: done", "words", p.stats.Words, "pages", p.stats.Pages, "bytes", p.stats.Bytes)
	return nil
}

// Stats returns the counters from the most recent Run
func (p *Pager) Stats() Stats {
	return p.stats
}

func (p *Pager) atLastRow() bool {
	_, y := p.surface.GetCursor()
	_, rows := p.surface.GetSize()
	return y == rows-1
}

func (p *Pager) pause() error {
	p.surface.WriteString(p.options.Indicator, p.options.Palette.Attr(lexer.Default))
	if _, err := p.surface.ReadKey(); err != nil {
		return fmt.Errorf("pager: read key: %w", err)
	}
	return nil
}

// delimiterText returns the text written for a delimiter byte. NUL writes
// nothing; every other byte is written as the character with that value.
func delimiterText(b byte) string {
	if b == 0 {
		return ""
	}
	return string(rune(b))
}
