package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/fmgr/internal/window"
)

func TestShowGeometry(t *testing.T) {
	store := window.NewGeometryStore(afero.NewMemMapFs(), "props/size.txt")
	require.NoError(t, store.Save(window.Geometry{X: 10, Y: 20, Width: 800, Height: 600}))

	var out bytes.Buffer
	require.NoError(t, showGeometry(&out, store, false))

	assert.Equal(t, "800x600+10+20 (x=10 y=20 width=800 height=600) from props/size.txt\n", out.String())
}

func TestShowGeometry_Reset(t *testing.T) {
	store := window.NewGeometryStore(afero.NewMemMapFs(), "props/size.txt")
	require.NoError(t, store.Save(window.Geometry{X: 10, Y: 20, Width: 800, Height: 600}))

	var out bytes.Buffer
	require.NoError(t, showGeometry(&out, store, true))

	assert.Contains(t, out.String(), "Removed props/size.txt")
	assert.Contains(t, out.String(), window.DefaultGeometry().String())
}
