// Package browsertest provides scripted browser sessions for tests.
package browsertest

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"go-fare-compare/internal/browser"
)

// Page scripts what a FakeSession does for one host.
type Page struct {
	Text        string
	NavigateErr error
	TextErr     error
	// Panic, when set, is raised from Navigate.
	Panic any
}

// FakeSession serves scripted pages keyed by host. Unknown hosts time out.
type FakeSession struct {
	mu       sync.Mutex
	pages    map[string]Page
	current  Page
	CloseErr error

	Navigated   []string
	Selectors   []string
	Screenshots []string
	Closed      int
}

func NewFakeSession(pages map[string]Page) *FakeSession {
	return &FakeSession{pages: pages}
}

func (s *FakeSession) Navigate(rawURL string) error {
	s.mu.Lock()
	s.Navigated = append(s.Navigated, rawURL)
	p, ok := s.pages[host(rawURL)]
	if !ok {
		p = Page{TextErr: fmt.Errorf("%w: no scripted page for %s", browser.ErrTimeout, rawURL)}
	}
	s.current = p
	s.mu.Unlock()

	if p.Panic != nil {
		panic(p.Panic)
	}
	return p.NavigateErr
}

func (s *FakeSession) FirstText(selector string, timeout time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Selectors = append(s.Selectors, selector)
	return s.current.Text, s.current.TextErr
}

func (s *FakeSession) Screenshot(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Screenshots = append(s.Screenshots, path)
	return nil
}

func (s *FakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed++
	return s.CloseErr
}

// FakeOpener hands out Session, or fails with Err.
type FakeOpener struct {
	Session *FakeSession
	Err     error
	Opens   int
}

func (o *FakeOpener) Open(ctx context.Context) (browser.Session, error) {
	o.Opens++
	if o.Err != nil {
		return nil, o.Err
	}
	if o.Session == nil {
		return nil, nil
	}
	return o.Session, nil
}

func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
