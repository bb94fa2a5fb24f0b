package uber

import (
	"context"
	"testing"
	"time"

	"go-fare-compare/internal/browser/browsertest"
	"go-fare-compare/internal/config"
	"go-fare-compare/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewUberScraper_Defaults(t *testing.T) {
	cfg := &config.Config{Browser: config.BrowserConfig{ElementWaitTimeout: 15 * time.Second}}
	s := NewUberScraper(cfg, zap.NewNop(), nil)

	assert.Equal(t, "Uber", s.Name())
	assert.Equal(t, "UberGo", s.Service())
	assert.True(t, s.RequiresSession())
	assert.Equal(t,
		"https://m.uber.com/looking?pickup=Rajwada,%20Indore&dropoff=Vijay%20Nagar,%20Indore",
		s.TargetURL(scraper.FareRequest{Pickup: "Rajwada, Indore", Drop: "Vijay Nagar, Indore"}))
}

func TestNewUberScraper_ConfiguredSelectors(t *testing.T) {
	cfg := &config.Config{
		Browser: config.BrowserConfig{ElementWaitTimeout: time.Second},
		Providers: config.ProvidersConfig{
			Uber: config.LiveProviderConfig{Selectors: []string{"[data-test='vehicle-price']"}},
		},
	}
	sess := browsertest.NewFakeSession(map[string]browsertest.Page{"m.uber.com": {Text: "₹ 187.45"}})
	s := NewUberScraper(cfg, zap.NewNop(), nil)

	out := s.Quote(context.Background(), scraper.FareRequest{Pickup: "Palasia", Drop: "Airport"}, sess)

	assert.Equal(t, "₹ 187.45", out.Display())
	require.Len(t, sess.Selectors, 1)
	assert.Equal(t, "[data-test='vehicle-price']", sess.Selectors[0])
}
