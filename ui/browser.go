// Package ui owns the terminal and the redraw loop. The rendering
// pipeline itself (resolve, layout, paint) is a pure function of the
// document, the stylesheet and the viewport; this package just decides
// when to run it and where the frame goes.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/hibari-browser/hibari/css"
	"github.com/hibari-browser/hibari/dom"
	"github.com/hibari-browser/hibari/layout"
	"github.com/hibari-browser/hibari/render"
	"github.com/hibari-browser/hibari/style"
)

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	cursorHome     = "\x1b[H"

	ctrlC = 0x03

	redrawInterval = 100 * time.Millisecond
)

// Browser renders one document in the terminal until the user quits.
type Browser struct {
	document *dom.Node
	sheet    css.Stylesheet
	log      *zap.Logger

	// Fixed viewport override; zero means "follow the terminal size".
	width  int
	height int
}

// Option configures a Browser.
type Option func(*Browser)

// WithViewport fixes the viewport size instead of following the
// terminal.
func WithViewport(width, height int) Option {
	return func(b *Browser) {
		b.width = width
		b.height = height
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Browser) {
		b.log = log
	}
}

// New creates a browser for a parsed document and its stylesheet.
func New(document *dom.Node, sheet css.Stylesheet, opts ...Option) *Browser {
	b := &Browser{
		document: document,
		sheet:    sheet,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RenderFrame runs the pipeline once for the given viewport and
// returns the finished frame. A document whose root resolves to
// display:none renders blank.
func (b *Browser) RenderFrame(width, height int) string {
	canvas := render.NewCanvas(width, height)
	if styled := style.Resolve(b.document, b.sheet); styled != nil {
		object := layout.Layout(styled, layout.Rect{X: 0, Y: 0, Width: width, Height: height})
		canvas.Paint(object)
	}
	return canvas.Frame()
}

// Run takes over the terminal and redraws on a fixed tick until `q`,
// Ctrl-C or context cancellation.
func (b *Browser) Run(ctx context.Context) error {
	inFd := int(os.Stdin.Fd())
	outFd := int(os.Stdout.Fd())

	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		return fmt.Errorf("unable to enter raw mode: %w", err)
	}
	defer term.Restore(inFd, oldState)

	fmt.Print(enterAltScreen + hideCursor)
	defer fmt.Print(showCursor + leaveAltScreen)

	keys := make(chan byte, 8)
	go readKeys(keys)

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	b.log.Info("ui loop started")
	for {
		width, height := b.viewportSize(outFd)
		frame := b.RenderFrame(width, height)
		// Raw mode needs explicit carriage returns.
		fmt.Print(cursorHome + strings.ReplaceAll(frame, "\n", "\r\n"))

		select {
		case <-ctx.Done():
			b.log.Info("ui loop cancelled")
			return ctx.Err()
		case key, ok := <-keys:
			if !ok || key == 'q' || key == ctrlC {
				b.log.Info("ui loop finished")
				return nil
			}
		case <-ticker.C:
		}
	}
}

// viewportSize returns the configured viewport, falling back to the
// current terminal size. The result is always at least one cell.
func (b *Browser) viewportSize(outFd int) (int, int) {
	width, height := b.width, b.height
	if width == 0 || height == 0 {
		tw, th, err := term.GetSize(outFd)
		if err != nil {
			tw, th = 80, 40
		}
		if width == 0 {
			width = tw
		}
		if height == 0 {
			height = th
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

func readKeys(keys chan<- byte) {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			close(keys)
			return
		}
		if n > 0 {
			keys <- buf[0]
		}
	}
}
