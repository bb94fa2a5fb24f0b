package fares

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-fare-compare/internal/browser"
	"go-fare-compare/internal/config"
	"go-fare-compare/internal/scraper"
	"go-fare-compare/internal/scraper/indrive"
	"go-fare-compare/internal/scraper/ola"
	"go-fare-compare/internal/scraper/rapido"
	"go-fare-compare/internal/scraper/uber"
	"go-fare-compare/utils"

	"go.uber.org/zap"
)

// ErrFetchFailed means the whole cycle broke down and no rows were produced.
var ErrFetchFailed = errors.New("unable to fetch fare information")

// Service runs fetch cycles: one browser session, every provider in order,
// session released at the end. Cycles are serialized so at most one session
// is open at a time.
type Service struct {
	log       *zap.Logger
	opener    browser.Opener
	providers []scraper.Provider

	mu sync.Mutex
}

func NewService(log *zap.Logger, opener browser.Opener, providers []scraper.Provider) *Service {
	return &Service{
		log:       log,
		opener:    opener,
		providers: providers,
	}
}

// DefaultProviders returns the fixed table order: Uber, Ola, Rapido, inDrive.
func DefaultProviders(cfg *config.Config, log *zap.Logger) []scraper.Provider {
	shots := utils.NewScreenShotDebugger(cfg.Browser.ScreenshotsPath, log)
	return []scraper.Provider{
		uber.NewUberScraper(cfg, log, shots),
		ola.NewOlaScraper(cfg, log, shots),
		rapido.NewRapidoScraper(cfg, log, shots),
		indrive.NewInDriveScraper(),
	}
}

// FetchAll returns one quote per provider in provider order. Lookup failures
// degrade to "Not available" rows; only an unexpected breakdown of the cycle
// itself returns ErrFetchFailed, with no rows.
func (s *Service) FetchAll(ctx context.Context, req scraper.FareRequest) (quotes []scraper.Quote, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("❌ Error during fare fetching", zap.Any("panic", r), zap.Stack("stack"))
			quotes, err = nil, fmt.Errorf("%w: %v", ErrFetchFailed, r)
		}
	}()

	start := time.Now()
	s.log.Info("🔄 Checking fares", zap.String("pickup", req.Pickup), zap.String("drop", req.Drop))

	if !s.needsSession() {
		quotes = s.collect(ctx, req, nil)
	} else {
		openErr := browser.WithSession(ctx, s.opener, s.log, func(sess browser.Session) error {
			quotes = s.collect(ctx, req, sess)
			return nil
		})
		if openErr != nil {
			s.log.Error("❌ Failed to set up browser session", zap.Error(openErr))
			quotes = s.collect(ctx, req, nil)
		}
	}

	found := 0
	for _, q := range quotes {
		if q.Status == scraper.StatusOK {
			found++
		}
	}
	s.log.Info("✅ Fare comparison completed",
		zap.Int("quotes", len(quotes)),
		zap.Int("available", found),
		zap.Duration("took", time.Since(start)),
	)
	return quotes, nil
}

// collect runs providers one after another against the shared session.
func (s *Service) collect(ctx context.Context, req scraper.FareRequest, sess browser.Session) []scraper.Quote {
	quotes := make([]scraper.Quote, 0, len(s.providers))
	for _, p := range s.providers {
		var out scraper.Outcome
		if p.RequiresSession() && sess == nil {
			out = scraper.Outcome{Status: scraper.StatusFailed, Err: browser.ErrNoSession}
		} else {
			out = p.Quote(ctx, req, sess)
		}
		s.log.Debug("📦 Provider done", zap.String("app", p.Name()), zap.Stringer("status", out.Status))
		quotes = append(quotes, scraper.NewQuote(p, out))
	}
	return quotes
}

func (s *Service) needsSession() bool {
	for _, p := range s.providers {
		if p.RequiresSession() {
			return true
		}
	}
	return false
}
