package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-fare-compare/internal/config"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// launchArgs keep the session cheap: no extensions, plugins or images.
var launchArgs = []string{
	"--no-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
	"--disable-extensions",
	"--disable-plugins",
	"--blink-settings=imagesEnabled=false",
}

// Launcher provisions the playwright driver and opens one PlaywrightManager per call.
type Launcher struct {
	cfg         config.BrowserConfig
	cookiesPath string
	log         *zap.Logger

	mu        sync.Mutex
	installed bool
}

func NewLauncher(cfg *config.Config, log *zap.Logger) *Launcher {
	return &Launcher{
		cfg:         cfg.Browser,
		cookiesPath: cfg.CookiesPath,
		log:         log,
		installed:   cfg.Browser.SkipInstall,
	}
}

// Open starts playwright, launches chromium and prepares a single emulated page.
// Anything started before a failure is torn down again.
func (l *Launcher) Open(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	if err := l.install(); err != nil {
		return nil, fmt.Errorf("%w: install driver: %w", ErrOpenFailed, err)
	}

	pm, err := l.launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	l.log.Info("✅ Browser session ready", zap.String("device", l.cfg.Device), zap.Bool("headless", !l.cfg.Headed))
	return pm, nil
}

// install downloads the driver and chromium once per process; a failed attempt
// is retried on the next Open.
func (l *Launcher) install() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.installed {
		return nil
	}
	l.log.Info("📥 Installing playwright driver and chromium...")
	if err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
	}); err != nil {
		return err
	}
	l.installed = true
	return nil
}

func (l *Launcher) launch() (pm *PlaywrightManager, err error) {
	pm = &PlaywrightManager{}
	defer func() {
		if err != nil {
			if closeErr := pm.Close(); closeErr != nil {
				l.log.Warn("⚠️ Error cleaning up half-open session", zap.Error(closeErr))
			}
			pm = nil
		}
	}()

	pm.pw, err = playwright.Run()
	if err != nil {
		return pm, fmt.Errorf("start playwright: %w", err)
	}

	device, ok := pm.pw.Devices[l.cfg.Device]
	if !ok || device == nil {
		return pm, fmt.Errorf("unknown device profile %q", l.cfg.Device)
	}

	pm.browser, err = pm.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(!l.cfg.Headed),
		Args:     launchArgs,
	})
	if err != nil {
		return pm, fmt.Errorf("launch chromium: %w", err)
	}

	pm.context, err = pm.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent:         playwright.String(device.UserAgent),
		Viewport:          device.Viewport,
		DeviceScaleFactor: playwright.Float(device.DeviceScaleFactor),
		IsMobile:          playwright.Bool(device.IsMobile),
		HasTouch:          playwright.Bool(device.HasTouch),
		JavaScriptEnabled: playwright.Bool(false),
	})
	if err != nil {
		return pm, fmt.Errorf("new browser context: %w", err)
	}
	pm.context.SetDefaultNavigationTimeout(float64(l.cfg.PageLoadTimeout.Milliseconds()))

	if l.cookiesPath != "" {
		cookies, err := LoadCookieDir(l.cookiesPath)
		if err != nil {
			l.log.Warn("⚠️ Could not load cookies. Continuing.", zap.String("path", l.cookiesPath), zap.Error(err))
		} else if len(cookies) > 0 {
			if err := pm.context.AddCookies(cookies); err != nil {
				l.log.Warn("⚠️ Could not add cookies. Continuing.", zap.Error(err))
			} else {
				l.log.Info("🍪 Loaded cookies", zap.Int("count", len(cookies)))
			}
		}
	}

	pm.page, err = pm.context.NewPage()
	if err != nil {
		return pm, fmt.Errorf("new page: %w", err)
	}
	return pm, nil
}

// PlaywrightManager is the playwright-backed Session. Fields are filled in
// launch order and released in reverse by Close.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

func (pm *PlaywrightManager) Navigate(url string) error {
	if _, err := pm.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (pm *PlaywrightManager) FirstText(selector string, timeout time.Duration) (string, error) {
	ms := playwright.Float(float64(timeout.Milliseconds()))
	el := pm.page.Locator(selector).First()
	if err := el.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: ms,
	}); err != nil {
		return "", wrapErr(err)
	}

	text, err := el.InnerText(playwright.LocatorInnerTextOptions{Timeout: ms})
	if err != nil {
		return "", wrapErr(err)
	}
	return strings.TrimSpace(text), nil
}

func (pm *PlaywrightManager) Screenshot(path string) error {
	_, err := pm.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return wrapErr(err)
}

func (pm *PlaywrightManager) Close() error {
	var errs []error
	if pm.page != nil {
		if err := pm.page.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close page: %w", err))
		}
	}
	if pm.context != nil {
		if err := pm.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close context: %w", err))
		}
	}
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if pm.pw != nil {
		if err := pm.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
	}
	return errors.Join(errs...)
}

// wrapErr maps playwright timeouts onto ErrTimeout.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return err
}
