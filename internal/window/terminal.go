package window

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Terminal moves, resizes and reports the window hosting the program
type Terminal interface {
	Apply(g Geometry) error
	Query(ctx context.Context) (Geometry, error)
}

// ErrNoReport is returned when the terminal does not answer a geometry query
var ErrNoReport = errors.New("terminal did not report its geometry")

// xterm window operations, sizes are in pixels
const (
	seqMove        = "\x1b[3;%d;%dt"
	seqResize      = "\x1b[4;%d;%dt"
	seqReportPos   = "\x1b[13t"
	seqReportPixel = "\x1b[14t"
)

var (
	positionReport = regexp.MustCompile(`\x1b\[3;(-?\d+);(-?\d+)t`)
	sizeReport     = regexp.MustCompile(`\x1b\[4;(\d+);(\d+)t`)
)

// XTerm drives a terminal through xterm window manipulation sequences
type XTerm struct {
	in  io.Reader
	out io.Writer

	// makeRaw puts the input in raw mode for the duration of a query
	makeRaw func() (restore func(), err error)
}

// NewXTerm creates a terminal bound to in and out without raw mode handling
func NewXTerm(in io.Reader, out io.Writer) *XTerm {
	return &XTerm{in: in, out: out}
}

// NewStdXTerm creates a terminal bound to the process stdin and stdout
func NewStdXTerm() *XTerm {
	t := NewXTerm(os.Stdin, os.Stdout)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		t.makeRaw = func() (func(), error) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return nil, err
			}
			return func() {
				if err := term.Restore(fd, state); err != nil {
					logrus.Warnf("Failed to restore terminal state: %v", err)
				}
			}, nil
		}
	}
	return t
}

// Apply moves and resizes the window. A non positive size only moves it.
func (t *XTerm) Apply(g Geometry) error {
	seq := fmt.Sprintf(seqMove, g.X, g.Y)
	if g.Width > 0 && g.Height > 0 {
		seq += fmt.Sprintf(seqResize, g.Height, g.Width)
	}
	if _, err := io.WriteString(t.out, seq); err != nil {
		return fmt.Errorf("failed to apply geometry %s: %w", g, err)
	}
	return nil
}

// Query asks the terminal for its position and pixel size and waits for both reports
func (t *XTerm) Query(ctx context.Context) (Geometry, error) {
	if t.makeRaw != nil {
		restore, err := t.makeRaw()
		if err != nil {
			return Geometry{}, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer restore()
	}

	if _, err := io.WriteString(t.out, seqReportPos+seqReportPixel); err != nil {
		return Geometry{}, fmt.Errorf("failed to query geometry: %w", err)
	}

	type result struct {
		g   Geometry
		err error
	}
	done := make(chan result, 1)

	// A timed out query leaves this reader blocked in Read until input arrives.
	// Query runs once, right before Window.Close ends the process.
	go func() {
		var buf []byte
		chunk := make([]byte, 64)
		for {
			n, err := t.in.Read(chunk)
			buf = append(buf, chunk[:n]...)
			if g, ok := parseReports(buf); ok {
				done <- result{g: g}
				return
			}
			if err != nil {
				done <- result{err: fmt.Errorf("%w: %w", ErrNoReport, err)}
				return
			}
		}
	}()

	select {
	case r := <-done:
		return r.g, r.err
	case <-ctx.Done():
		return Geometry{}, fmt.Errorf("%w: %w", ErrNoReport, ctx.Err())
	}
}

// parseReports extracts the position and size reports from raw terminal input
func parseReports(buf []byte) (Geometry, bool) {
	pos := positionReport.FindSubmatch(buf)
	size := sizeReport.FindSubmatch(buf)
	if pos == nil || size == nil {
		return Geometry{}, false
	}

	var g Geometry
	g.X, _ = strconv.Atoi(string(pos[1]))
	g.Y, _ = strconv.Atoi(string(pos[2]))
	g.Height, _ = strconv.Atoi(string(size[1]))
	g.Width, _ = strconv.Atoi(string(size[2]))
	return g, true
}
