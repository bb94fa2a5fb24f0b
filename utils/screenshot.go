package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Screenshotter is anything that can dump the current page to a PNG file.
type Screenshotter interface {
	Screenshot(path string) error
}

// ScreenShotDebugger handles debug screenshots. A nil debugger is a no-op,
// which is what callers get when no output directory is configured.
type ScreenShotDebugger struct {
	outputDir string
	log       *zap.Logger
	now       func() time.Time
}

func NewScreenShotDebugger(dir string, log *zap.Logger) *ScreenShotDebugger {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Warn("⚠️ Screenshots disabled, cannot create directory", zap.String("dir", dir), zap.Error(err))
		return nil
	}
	return &ScreenShotDebugger{
		outputDir: dir,
		log:       log,
		now:       time.Now,
	}
}

func (s *ScreenShotDebugger) CaptureAndLog(page Screenshotter, name, message string) error {
	if s == nil || page == nil {
		return nil
	}
	timestamp := s.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", strings.ToLower(name), timestamp)
	path := filepath.Join(s.outputDir, filename)
	s.log.Info("📸 "+message, zap.String("file", path))

	if err := page.Screenshot(path); err != nil {
		s.log.Warn("⚠️ Failed to capture screenshot", zap.Error(err))
		return err
	}
	return nil
}
