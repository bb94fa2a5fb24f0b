package ola

import (
	"go-fare-compare/internal/config"
	"go-fare-compare/internal/scraper"
	"go-fare-compare/utils"

	"go.uber.org/zap"
)

const (
	App                = "Ola"
	Service            = "Mini"
	DefaultURLTemplate = "https://book.olacabs.com/?pickup={pickup}&drop={drop}"
)

// placeholders, update when book.olacabs.com changes
var DefaultSelectors = []string{".fare-display", ".price-container", ".estimated-fare"}

func NewOlaScraper(cfg *config.Config, log *zap.Logger, shots *utils.ScreenShotDebugger) *scraper.LiveScraper {
	target := scraper.LiveTarget{
		App:         App,
		Service:     Service,
		URLTemplate: DefaultURLTemplate,
		Selectors:   DefaultSelectors,
		Wait:        cfg.Browser.ElementWaitTimeout,
	}
	return scraper.NewLiveScraper(target.WithOverrides(cfg.Providers.Ola), log, shots)
}
