package indrive

import (
	"context"
	"testing"

	"go-fare-compare/internal/browser/browsertest"
	"go-fare-compare/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func TestInDriveScraper_Quote(t *testing.T) {
	s := NewInDriveScraper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	requests := []scraper.FareRequest{
		{Pickup: "Rajwada, Indore", Drop: "Vijay Nagar, Indore"},
		{Pickup: "x", Drop: "y"},
	}
	for _, req := range requests {
		//no session, cancelled context: still the same answer
		out := s.Quote(ctx, req, nil)
		assert.Equal(t, scraper.StatusOK, out.Status)
		assert.Equal(t, NegotiatedFare, out.Display())
	}

	sess := browsertest.NewFakeSession(nil)
	out := s.Quote(context.Background(), requests[0], sess)
	assert.Equal(t, "Set your price (negotiable)", out.Display())
	assert.Empty(t, sess.Navigated, "inDrive must not touch the browser")

	assert.Equal(t, "inDrive", s.Name())
	assert.Equal(t, "Car", s.Service())
	assert.False(t, s.RequiresSession())
}
