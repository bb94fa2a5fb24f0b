package utils

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPage struct {
	paths []string
	err   error
}

func (p *recordingPage) Screenshot(path string) error {
	p.paths = append(p.paths, path)
	return p.err
}

func TestScreenShotDebugger_Disabled(t *testing.T) {
	d := NewScreenShotDebugger("", zap.NewNop())
	assert.Nil(t, d)

	page := &recordingPage{}
	assert.NoError(t, d.CaptureAndLog(page, "uber-timeout", "Uber timed out"))
	assert.Empty(t, page.paths)
}

func TestScreenShotDebugger_CaptureAndLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	d := NewScreenShotDebugger(dir, zap.NewNop())
	require.NotNil(t, d)
	d.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }

	page := &recordingPage{}
	require.NoError(t, d.CaptureAndLog(page, "Uber-timeout", "Uber timed out"))
	assert.Equal(t, []string{filepath.Join(dir, "uber-timeout_2026-03-01_09-30-00.png")}, page.paths)
}

func TestScreenShotDebugger_PropagatesError(t *testing.T) {
	d := NewScreenShotDebugger(t.TempDir(), zap.NewNop())
	page := &recordingPage{err: errors.New("page closed")}
	assert.Error(t, d.CaptureAndLog(page, "ola", "Ola failed"))
}
