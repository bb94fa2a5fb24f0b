package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-fare-compare/internal/browser"
	"go-fare-compare/internal/config"
	"go-fare-compare/internal/filter"
	"go-fare-compare/utils"

	"go.uber.org/zap"
)

const (
	pickupPlaceholder = "{pickup}"
	dropPlaceholder   = "{drop}"
)

// LiveTarget describes one scraped provider page.
type LiveTarget struct {
	App         string
	Service     string
	URLTemplate string
	Selectors   []string
	Wait        time.Duration
}

// WithOverrides replaces the URL template and selectors with configured ones, if any.
func (s LiveTarget) WithOverrides(c config.LiveProviderConfig) LiveTarget {
	if c.URLTemplate != "" {
		s.URLTemplate = c.URLTemplate
	}
	if len(c.Selectors) > 0 {
		s.Selectors = c.Selectors
	}
	return s
}

// LiveScraper loads a provider's mobile page and reads the first fare element.
type LiveScraper struct {
	target LiveTarget
	log    *zap.Logger
	shots  *utils.ScreenShotDebugger
}

func NewLiveScraper(target LiveTarget, log *zap.Logger, shots *utils.ScreenShotDebugger) *LiveScraper {
	return &LiveScraper{
		target: target,
		log:    log.With(zap.String("app", target.App)),
		shots:  shots,
	}
}

func (s *LiveScraper) Name() string {
	return s.target.App
}

func (s *LiveScraper) Service() string {
	return s.target.Service
}

func (s *LiveScraper) RequiresSession() bool {
	return true
}

// Selector joins the selector set into one CSS selector list.
func (s *LiveScraper) Selector() string {
	return strings.Join(s.target.Selectors, ", ")
}

// TargetURL fills the template with the space-escaped locations.
func (s *LiveScraper) TargetURL(req FareRequest) string {
	r := strings.NewReplacer(
		pickupPlaceholder, EscapeSpaces(req.Pickup),
		dropPlaceholder, EscapeSpaces(req.Drop),
	)
	return r.Replace(s.target.URLTemplate)
}

func (s *LiveScraper) Quote(ctx context.Context, req FareRequest, session browser.Session) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic during %s lookup: %v", s.target.App, r)
			s.log.Error("❌ Error fetching fare", zap.Error(err))
			out = Outcome{Status: StatusFailed, Err: err}
		}
	}()

	if session == nil {
		return Outcome{Status: StatusFailed, Err: browser.ErrNoSession}
	}
	if err := ctx.Err(); err != nil {
		s.log.Warn("⚠️ Fare lookup skipped", zap.Error(err))
		return Outcome{Status: StatusFailed, Err: err}
	}

	//navigate
	pageURL := s.TargetURL(req)
	s.log.Info("🔍 Checking fares...", zap.String("url", pageURL))
	if err := session.Navigate(pageURL); err != nil {
		return s.failure(session, "navigate", err)
	}

	//wait for fare element
	text, err := session.FirstText(s.Selector(), s.target.Wait)
	if err != nil {
		return s.failure(session, "wait for fare", err)
	}

	fare, err := filter.ExtractFare(text)
	if err != nil {
		s.log.Info("ℹ️ Fare element has no fare", zap.String("text", text), zap.Error(err))
		return Outcome{Status: StatusNotFound, Err: err}
	}

	s.log.Info("✅ Fare found", zap.String("fare", fare))
	return Outcome{Fare: fare, Status: StatusOK}
}

func (s *LiveScraper) failure(session browser.Session, step string, err error) Outcome {
	if errors.Is(err, browser.ErrTimeout) {
		s.log.Warn("⏳ Fare lookup timed out", zap.String("step", step))
		s.shots.CaptureAndLog(session, s.target.App+"-timeout", s.target.App+": fare lookup timed out")
		return Outcome{Status: StatusTimedOut, Err: err}
	}
	s.log.Error("❌ Error fetching fare", zap.String("step", step), zap.Error(err))
	return Outcome{Status: StatusFailed, Err: err}
}

// EscapeSpaces percent-encodes spaces and leaves everything else as typed.
func EscapeSpaces(str string) string {
	return strings.ReplaceAll(str, " ", "%20")
}
