package telegram

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// Notifier - sends ops alerts to a telegram channel
type Notifier struct {
	token string
	mu    sync.Mutex
	bot   *tgbotapi.BotAPI
}

func NewNotifier(token string) *Notifier {
	return &Notifier{token: token}
}

func (n *Notifier) SendTelegram(message string, channelId int64) error {
	if n.token == "" || channelId == 0 {
		return fmt.Errorf("telegram: not configured")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.bot == nil {
		bot, err := tgbotapi.NewBotAPI(n.token)
		if err != nil {
			return fmt.Errorf("telegram: %w", err)
		}
		n.bot = bot
	}

	_, err := n.bot.Send(tgbotapi.NewMessage(channelId, message))
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	return nil
}
