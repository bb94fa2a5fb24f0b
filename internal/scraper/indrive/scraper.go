// inDrive prices by negotiation between rider and driver, so there is no
// point estimate to scrape.

package indrive

import (
	"context"

	"go-fare-compare/internal/browser"
	"go-fare-compare/internal/scraper"
)

const (
	App            = "inDrive"
	Service        = "Car"
	NegotiatedFare = "Set your price (negotiable)"
)

type InDriveScraper struct{}

func NewInDriveScraper() *InDriveScraper {
	return &InDriveScraper{}
}

func (s *InDriveScraper) Name() string {
	return App
}

func (s *InDriveScraper) Service() string {
	return Service
}

func (s *InDriveScraper) RequiresSession() bool {
	return false
}

func (s *InDriveScraper) Quote(ctx context.Context, req scraper.FareRequest, session browser.Session) scraper.Outcome {
	return scraper.Outcome{Fare: NegotiatedFare, Status: scraper.StatusOK}
}
