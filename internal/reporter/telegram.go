package reporter

import (
	"fmt"
	"html"
	"strings"

	"go-fare-compare/internal/config"
	"go-fare-compare/internal/scraper"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendQuotes(req scraper.FareRequest, quotes []scraper.Quote) error {
	return t.SendMessage(FormatQuotes(req, quotes))
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Fare check failed</b>:\n%s", html.EscapeString(errReq.Error()))
	return t.SendMessage(text)
}

// FormatQuotes renders the comparison as Telegram HTML.
func FormatQuotes(req scraper.FareRequest, quotes []scraper.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚗 <b>%s</b> → <b>%s</b>\n\n", html.EscapeString(req.Pickup), html.EscapeString(req.Drop))
	for _, q := range quotes {
		fmt.Fprintf(&b, "%s %s (%s): %s\n",
			statusIcon(q.Status),
			html.EscapeString(q.App),
			html.EscapeString(q.Service),
			html.EscapeString(q.Fare),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func statusIcon(s scraper.Status) string {
	switch s {
	case scraper.StatusOK:
		return "✅"
	case scraper.StatusTimedOut:
		return "⏳"
	default:
		return "❌"
	}
}
