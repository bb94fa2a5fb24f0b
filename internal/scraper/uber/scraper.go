package uber

import (
	"go-fare-compare/internal/config"
	"go-fare-compare/internal/scraper"
	"go-fare-compare/utils"

	"go.uber.org/zap"
)

const (
	App                = "Uber"
	Service            = "UberGo"
	DefaultURLTemplate = "https://m.uber.com/looking?pickup={pickup}&dropoff={drop}"
)

// DefaultSelectors are best guesses at the mobile fare element.
// Uber's page structure changes frequently, override them in config.
var DefaultSelectors = []string{"[data-testid*='fare']", ".fare-estimate", ".price"}

func NewUberScraper(cfg *config.Config, log *zap.Logger, shots *utils.ScreenShotDebugger) *scraper.LiveScraper {
	target := scraper.LiveTarget{
		App:         App,
		Service:     Service,
		URLTemplate: DefaultURLTemplate,
		Selectors:   DefaultSelectors,
		Wait:        cfg.Browser.ElementWaitTimeout,
	}
	return scraper.NewLiveScraper(target.WithOverrides(cfg.Providers.Uber), log, shots)
}
