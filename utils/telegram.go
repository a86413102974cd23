package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier pushes order notifications through the Telegram bot
// API. Delivery is strictly best-effort: every failure is logged and
// dropped so the checkout that triggered it is never affected.
type TelegramNotifier struct {
	Token   string
	ChatID  string
	BaseURL string
	Client  *http.Client
}

// NewTelegramNotifierFromEnv builds a notifier from TELEGRAM_BOT_TOKEN
// and TELEGRAM_CHAT_ID. With either missing the notifier still works but
// only logs the orders it would have sent.
func NewTelegramNotifierFromEnv() *TelegramNotifier {
	return &TelegramNotifier{
		Token:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID:  os.Getenv("TELEGRAM_CHAT_ID"),
		BaseURL: telegramAPIBase,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NotifyOrder sends the order summary in the background (non-blocking).
func (n *TelegramNotifier) NotifyOrder(accountName string, totalCost int, itemSummary string) {
	if n.Token == "" || n.ChatID == "" {
		log.Printf("Telegram not configured, skipping order notification for %s (%d points)", accountName, totalCost)
		return
	}

	go func() {
		if err := n.send(accountName, totalCost, itemSummary); err != nil {
			log.Printf("Failed to send order notification: %v", err)
		}
	}()
}

func (n *TelegramNotifier) send(accountName string, totalCost int, itemSummary string) error {
	message := fmt.Sprintf("🚨 *NEW ORDER!* 🚨\n\n👤 *Customer:* %s\n💰 *Total:* %d SP\n\n🛒 *Items:*\n%s",
		accountName, totalCost, itemSummary)

	payload, err := json.Marshal(map[string]string{
		"chat_id":    n.ChatID,
		"text":       message,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.BaseURL, n.Token)
	resp, err := n.Client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decoding telegram response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}
	return nil
}
