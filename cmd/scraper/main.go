package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-fare-compare/internal/browser"
	"go-fare-compare/internal/config"
	"go-fare-compare/internal/fares"
	"go-fare-compare/internal/logger"
	"go-fare-compare/internal/reporter"
	"go-fare-compare/internal/scraper"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, `usage: scraper "<pickup>" "<drop>"`)
		os.Exit(2)
	}

	//load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("❌ Failed to init logger: %v", err)
	}
	defer func() {
		_ = zlog.Sync()
	}()

	req, err := scraper.NewFareRequest(os.Args[1], os.Args[2])
	if err != nil {
		color.Yellow("⚠️ Please enter both pickup and drop locations")
		os.Exit(2)
	}

	//worst case is three page loads plus three waits
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	svc := fares.NewService(zlog, browser.NewLauncher(cfg, zlog), fares.DefaultProviders(cfg, zlog))
	quotes, err := svc.FetchAll(ctx, req)
	if err != nil {
		zlog.Error("❌ Fare comparison failed", zap.Error(err))
		color.Red("❌ Unable to fetch fare information. Please try again later.")
		report(cfg, zlog, func(r *reporter.TelegramReporter) error { return r.SendError(err) })
		os.Exit(1)
	}

	printQuotes(req, quotes)
	saveQuotes(cfg.ResultsPath, req, quotes, zlog)
	report(cfg, zlog, func(r *reporter.TelegramReporter) error { return r.SendQuotes(req, quotes) })
}

func printQuotes(req scraper.FareRequest, quotes []scraper.Quote) {
	bold := color.New(color.Bold)
	bold.Printf("\n📊 Fares from %s to %s\n\n", req.Pickup, req.Drop)
	fmt.Printf("%-10s %-10s %s\n", "App", "Service", "Fare")
	for _, q := range quotes {
		c := color.New(color.FgGreen)
		if q.Status != scraper.StatusOK {
			c = color.New(color.FgRed)
		}
		fmt.Printf("%-10s %-10s ", q.App, q.Service)
		c.Println(q.Fare)
	}
	fmt.Println()
}

type savedRun struct {
	Pickup    string          `json:"pickup"`
	Drop      string          `json:"drop"`
	CheckedAt time.Time       `json:"checked_at"`
	Results   []scraper.Quote `json:"results"`
}

// saveQuotes writes the run to <dir>/fares-YYYY-MM-DD.json, replacing an earlier run that day.
func saveQuotes(dir string, req scraper.FareRequest, quotes []scraper.Quote, zlog *zap.Logger) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		zlog.Warn("⚠️ Failed to create results directory", zap.Error(err))
		return
	}

	//gen filename: fares-YYYY-MM-DD.json
	filename := fmt.Sprintf("fares-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(savedRun{
		Pickup:    req.Pickup,
		Drop:      req.Drop,
		CheckedAt: time.Now(),
		Results:   quotes,
	}, "", "  ")
	if err != nil {
		zlog.Warn("⚠️ Failed to marshal results", zap.Error(err))
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		zlog.Warn("⚠️ Failed to write results file", zap.Error(err))
		return
	}
	zlog.Info("📁 Results saved", zap.String("path", filePath))
}

func report(cfg *config.Config, zlog *zap.Logger, send func(*reporter.TelegramReporter) error) {
	if !cfg.TelegramEnabled() {
		return
	}
	r, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		zlog.Warn("⚠️ Telegram disabled", zap.Error(err))
		return
	}
	if err := send(r); err != nil {
		zlog.Warn("⚠️ Failed to send Telegram report", zap.Error(err))
		return
	}
	zlog.Info("🤖 Sent Telegram report")
}
