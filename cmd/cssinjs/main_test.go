package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/cssinjs/internal/adapters/dom"
	"go.trai.ch/cssinjs/internal/adapters/hash"
	"go.trai.ch/cssinjs/internal/adapters/telemetry"
	"go.trai.ch/cssinjs/internal/app"
	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
	"go.trai.ch/cssinjs/internal/core/ports/mocks"
)

type fixture struct {
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	store  *mocks.MockSnapshotStore
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		store:  mocks.NewMockSnapshotStore(ctrl),
	}
	f.app = app.New(f.loader, f.logger, f.store, telemetry.NewNoOpTracer(), hash.Murmur{}, dom.Factory{})
	return f
}

func (f *fixture) provider(context.Context) (*app.Components, func(), error) {
	return &app.Components{App: f.app, Logger: f.logger}, func() {}, nil
}

func linkStylefile(path string) *domain.Stylefile {
	return &domain.Stylefile{
		Path:       path,
		SourceHash: "h",
		Components: []domain.Component{{
			Name:  "link",
			Path:  []string{"link"},
			Style: css.Object{css.Nest("a", css.Object{css.Decl("color", "red")})},
		}},
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, io.Discard, f.provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "cssinjs version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(nil, errors.New("load failed"))
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "load failed")
	})

	exitCode := run(context.Background(), []string{"build"}, io.Discard, io.Discard, f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Build verifies a build through the real serializer and document adapters.
func TestRun_Build(t *testing.T) {
	f := newFixture(t)
	sf := linkStylefile("/work/" + domain.StylefileName)
	f.loader.EXPECT().Load(".").Return(sf, nil)
	f.store.EXPECT().Get(sf.Path).Return(nil, nil)
	f.store.EXPECT().Put(sf.Path, gomock.Any()).Return(nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build"}, stdout, io.Discard, f.provider)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "a{color:red;}", stdout.String())
}

// TestRun_Signal verifies that the context is canceled and run returns once the watcher stops.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	sf := linkStylefile(filepath.Join(dir, domain.StylefileName))
	f.loader.EXPECT().Load(".").Return(sf, nil)

	w := mocks.NewMockWatcher(ctrl)
	f.app.WithWatcher(w)

	var watchCtx context.Context
	w.EXPECT().Start(gomock.Any(), dir).DoAndReturn(func(ctx context.Context, _ string) error {
		watchCtx = ctx
		return nil
	})
	w.EXPECT().Stop().Return(nil)
	w.EXPECT().Events().DoAndReturn(func() iter.Seq[ports.WatchEvent] {
		return func(func(ports.WatchEvent) bool) { <-watchCtx.Done() }
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int)
	go func() {
		done <- run(ctx, []string{"watch", "-o", filepath.Join(dir, "out.css")}, io.Discard, io.Discard, f.provider)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case ret := <-done:
		assert.Equal(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancellation")
	}

	got, err := os.ReadFile(filepath.Join(dir, "out.css"))
	require.NoError(t, err)
	assert.Equal(t, "a{color:red;}", string(got))
}
