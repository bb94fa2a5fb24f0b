package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrTimeout wraps page-load and element-wait timeouts.
	ErrTimeout = errors.New("browser timeout")
	// ErrNoSession is reported by adapters that needed a session but got none.
	ErrNoSession = errors.New("no browser session")
	// ErrOpenFailed wraps every failure to provision or start a session.
	ErrOpenFailed = errors.New("open browser session")
)

// Session is one headless, mobile-emulated page. It is single use and not
// safe for concurrent callers.
type Session interface {
	// Navigate loads url, bounded by the page load timeout.
	Navigate(url string) error
	// FirstText waits for at least one element matching the CSS selector list to
	// be attached and returns the trimmed visible text of the first match.
	FirstText(selector string, timeout time.Duration) (string, error)
	// Screenshot writes a full page PNG to path.
	Screenshot(path string) error
	// Close releases every resource behind the session.
	Close() error
}

type Opener interface {
	Open(ctx context.Context) (Session, error)
}

// WithSession opens a session, runs fn with it and closes it exactly once on
// every exit path, panics included. Close errors are logged, never returned.
// Open failures are returned wrapped in ErrOpenFailed and fn is not called.
func WithSession(ctx context.Context, opener Opener, log *zap.Logger, fn func(Session) error) error {
	sess, err := opener.Open(ctx)
	if err != nil {
		if errors.Is(err, ErrOpenFailed) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	if sess == nil {
		return fmt.Errorf("%w: opener returned no session", ErrOpenFailed)
	}

	defer func() {
		if err := sess.Close(); err != nil {
			log.Error("❌ Error closing browser session", zap.Error(err))
			return
		}
		log.Debug("🧹 Browser session closed")
	}()

	return fn(sess)
}
