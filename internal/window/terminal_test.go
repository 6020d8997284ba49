package window

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXTerm_Apply(t *testing.T) {
	var out bytes.Buffer
	xt := NewXTerm(strings.NewReader(""), &out)

	require.NoError(t, xt.Apply(Geometry{X: 10, Y: 20, Width: 640, Height: 480}))
	assert.Equal(t, "\x1b[3;10;20t\x1b[4;480;640t", out.String())
}

func TestXTerm_ApplyZeroSizeOnlyMoves(t *testing.T) {
	var out bytes.Buffer
	xt := NewXTerm(strings.NewReader(""), &out)

	require.NoError(t, xt.Apply(Geometry{X: 5, Y: 6}))
	assert.Equal(t, "\x1b[3;5;6t", out.String())
}

func TestXTerm_Query(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\x1b[3;120;45t\x1b[4;700;1024t")
	xt := NewXTerm(in, &out)

	g, err := xt.Query(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Geometry{X: 120, Y: 45, Width: 1024, Height: 700}, g)
	assert.Equal(t, "\x1b[13t\x1b[14t", out.String())
}

func TestXTerm_QueryReportsInAnyOrder(t *testing.T) {
	in := strings.NewReader("noise\x1b[4;300;400t more \x1b[3;-5;7t")
	g, err := NewXTerm(in, io.Discard).Query(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Geometry{X: -5, Y: 7, Width: 400, Height: 300}, g)
}

func TestXTerm_QueryNoAnswer(t *testing.T) {
	_, err := NewXTerm(strings.NewReader("\x1b[3;1;2t"), io.Discard).Query(context.Background())
	assert.ErrorIs(t, err, ErrNoReport)
}

func TestXTerm_QueryTimeout(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewXTerm(r, io.Discard).Query(ctx)
	assert.ErrorIs(t, err, ErrNoReport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
