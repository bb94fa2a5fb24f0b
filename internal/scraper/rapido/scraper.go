package rapido

import (
	"go-fare-compare/internal/config"
	"go-fare-compare/internal/scraper"
	"go-fare-compare/utils"

	"go.uber.org/zap"
)

const (
	App                = "Rapido"
	Service            = "Bike"
	DefaultURLTemplate = "https://rapido.bike/book?from={pickup}&to={drop}"
)

var DefaultSelectors = []string{".fare-amount", ".price-display", ".estimated-price"}

func NewRapidoScraper(cfg *config.Config, log *zap.Logger, shots *utils.ScreenShotDebugger) *scraper.LiveScraper {
	target := scraper.LiveTarget{
		App:         App,
		Service:     Service,
		URLTemplate: DefaultURLTemplate,
		Selectors:   DefaultSelectors,
		Wait:        cfg.Browser.ElementWaitTimeout,
	}
	return scraper.NewLiveScraper(target.WithOverrides(cfg.Providers.Rapido), log, shots)
}
