// Define an interface for all fare providers
// Ensure consistency

package scraper

import (
	"context"
	"errors"

	"go-fare-compare/internal/browser"
	"go-fare-compare/internal/filter"
)

// NotAvailable is shown for any provider whose fare could not be read.
const NotAvailable = "Not available"

var ErrMissingLocation = errors.New("pickup and drop locations are required")

type FareRequest struct {
	Pickup string
	Drop   string
}

// NewFareRequest normalizes both locations and rejects blank ones.
func NewFareRequest(pickup, drop string) (FareRequest, error) {
	req := FareRequest{
		Pickup: filter.NormalizeText(pickup),
		Drop:   filter.NormalizeText(drop),
	}
	if req.Pickup == "" || req.Drop == "" {
		return FareRequest{}, ErrMissingLocation
	}
	return req, nil
}

type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusTimedOut
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusTimedOut:
		return "timed_out"
	default:
		return "failed"
	}
}

// Outcome is the result of one provider lookup.
type Outcome struct {
	Fare   string
	Status Status
	Err    error
}

// Display collapses the outcome to the text shown to users.
func (o Outcome) Display() string {
	if o.Status == StatusOK && o.Fare != "" {
		return o.Fare
	}
	return NotAvailable
}

// Quote is one row of the comparison table.
type Quote struct {
	App     string `json:"App"`
	Service string `json:"Service"`
	Fare    string `json:"Fare"`
	Status  Status `json:"-"`
}

// Provider defines the interface that all fare sources must implement
type Provider interface {
	//Name is the app name (Uber, Ola, ...)
	Name() string

	//Service is the vehicle tier quoted (UberGo, Mini, ...)
	Service() string

	//RequiresSession is false for sources that never touch the browser
	RequiresSession() bool

	//Quote looks up the fare. session is nil when none could be opened.
	//Implementations never panic and never return a raw error to the caller.
	Quote(ctx context.Context, req FareRequest, session browser.Session) Outcome
}

// NewQuote builds the table row for a provider's outcome.
func NewQuote(p Provider, out Outcome) Quote {
	return Quote{
		App:     p.Name(),
		Service: p.Service(),
		Fare:    out.Display(),
		Status:  out.Status,
	}
}
