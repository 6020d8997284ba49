package window

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTerminal records geometry operations
type MockTerminal struct {
	mock.Mock
}

func (m *MockTerminal) Apply(g Geometry) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockTerminal) Query(ctx context.Context) (Geometry, error) {
	args := m.Called(ctx)
	return args.Get(0).(Geometry), args.Error(1)
}

func newTestWindow(t *testing.T, opts ...Option) (*Window, *GeometryStore, *int) {
	t.Helper()
	store := NewGeometryStore(afero.NewMemMapFs(), DefaultGeometryFile)
	code := -1
	opts = append(opts, WithExit(func(c int) { code = c }))
	return New(store, opts...), store, &code
}

func TestWindow_Title(t *testing.T) {
	w, _, _ := newTestWindow(t)
	assert.Equal(t, "File Manager 1.0", w.Title())
}

func TestWindow_OpenWithoutFileUsesDefaults(t *testing.T) {
	term := &MockTerminal{}
	term.On("Apply", DefaultGeometry()).Return(nil)

	w, _, _ := newTestWindow(t, WithTerminal(term))

	assert.Equal(t, DefaultGeometry(), w.Open())
	assert.Equal(t, DefaultGeometry(), w.Geometry())
	term.AssertExpectations(t)
}

func TestWindow_OpenRestoresStoredGeometry(t *testing.T) {
	w, store, _ := newTestWindow(t)
	stored := Geometry{X: 1, Y: 2, Width: 300, Height: 200}
	require.NoError(t, store.Save(stored))

	assert.Equal(t, stored, w.Open())
}

func TestWindow_OpenApplyFailureIsAbsorbed(t *testing.T) {
	term := &MockTerminal{}
	term.On("Apply", mock.Anything).Return(errors.New("broken pipe"))

	w, _, _ := newTestWindow(t, WithTerminal(term))
	assert.Equal(t, DefaultGeometry(), w.Open())
}

func TestWindow_CloseSavesQueriedGeometryAndExits(t *testing.T) {
	current := Geometry{X: 10, Y: 20, Width: 640, Height: 480}
	term := &MockTerminal{}
	term.On("Apply", mock.Anything).Return(nil)
	term.On("Query", mock.Anything).Return(current, nil)

	w, store, code := newTestWindow(t, WithTerminal(term))
	w.Open()
	w.Close()

	assert.Equal(t, 0, *code)
	assert.Equal(t, current, store.Load())
	term.AssertExpectations(t)
}

func TestWindow_CloseKeepsLastKnownGeometryWhenQueryFails(t *testing.T) {
	term := &MockTerminal{}
	term.On("Apply", mock.Anything).Return(nil)
	term.On("Query", mock.Anything).Return(Geometry{}, ErrNoReport)

	w, store, code := newTestWindow(t, WithTerminal(term))
	w.Open()
	w.Close()

	assert.Equal(t, 0, *code)
	assert.Equal(t, DefaultGeometry(), store.Load())
}

func TestWindow_CloseExitsEvenWhenSaveFails(t *testing.T) {
	store := NewGeometryStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), DefaultGeometryFile)
	code := -1
	w := New(store, WithExit(func(c int) { code = c }))

	w.Open()
	w.Close()
	assert.Equal(t, 0, code)
}
