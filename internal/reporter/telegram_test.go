package reporter

import (
	"testing"

	"go-fare-compare/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuotes(t *testing.T) {
	req := scraper.FareRequest{Pickup: "Rajwada, Indore", Drop: "C21 <Mall>"}
	quotes := []scraper.Quote{
		{App: "Uber", Service: "UberGo", Fare: "₹142", Status: scraper.StatusOK},
		{App: "Ola", Service: "Mini", Fare: "Not available", Status: scraper.StatusTimedOut},
		{App: "Rapido", Service: "Bike", Fare: "Not available", Status: scraper.StatusFailed},
		{App: "inDrive", Service: "Car", Fare: "Set your price (negotiable)", Status: scraper.StatusOK},
	}

	got := FormatQuotes(req, quotes)

	want := "🚗 <b>Rajwada, Indore</b> → <b>C21 &lt;Mall&gt;</b>\n\n" +
		"✅ Uber (UberGo): ₹142\n" +
		"⏳ Ola (Mini): Not available\n" +
		"❌ Rapido (Bike): Not available\n" +
		"✅ inDrive (Car): Set your price (negotiable)"
	assert.Equal(t, want, got)
}
