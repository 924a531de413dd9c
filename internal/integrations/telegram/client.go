package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Daniil2209/Cleandins/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки уведомлений администратору в Telegram
type Client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    Logger
}

// NewClient создает новый экземпляр Telegram-клиента
func NewClient(token string, chatID int64, log Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	log.Info("Telegram client authorized as @%s", bot.Self.UserName)

	return &Client{
		bot:    bot,
		chatID: chatID,
		log:    log,
	}, nil
}

// SendBookingCreated отправляет уведомление о новом бронировании
func (c *Client) SendBookingCreated(booking *domain.Booking) error {
	msg := tgbotapi.NewMessage(c.chatID, formatBookingMessage(booking))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := c.bot.Send(msg); err != nil {
		c.log.Error("SendBookingCreated: failed to notify about booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: booking id=%d: %v", ErrSendFailed, booking.ID, err)
	}

	c.log.Info("SendBookingCreated: notified about booking id=%d", booking.ID)
	return nil
}

// formatBookingMessage собирает текст уведомления администратору
func formatBookingMessage(b *domain.Booking) string {
	formattedDate := b.Date.Format("Monday, January 2, 2006")

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 *NEW BOOKING CONFIRMED* (ID: %d)\n\n", b.ID)
	fmt.Fprintf(&sb, "👤 *Customer:* %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "📱 *Phone:* %s\n", b.CustomerPhone)
	fmt.Fprintf(&sb, "📍 *Address:* %s\n\n", b.CustomerAddress)
	fmt.Fprintf(&sb, "🔧 *Service:* %s\n", b.ServiceName)
	fmt.Fprintf(&sb, "💰 *Price:* $%g\n", b.Price)
	fmt.Fprintf(&sb, "🗑️ *Bins:* %d total\n", b.TotalBins)
	fmt.Fprintf(&sb, "⏱️ *Duration:* %d minutes\n", b.DurationMinutes())
	fmt.Fprintf(&sb, "📍 *Location:* %s\n", b.WashingLocation)
	fmt.Fprintf(&sb, "🗓️ *Date:* %s\n", formattedDate)
	fmt.Fprintf(&sb, "⏰ *Time:* %s\n", b.StartTime)
	sb.WriteString("✅ *Status:* CONFIRMED\n\n")
	if b.Notes != nil && *b.Notes != "" {
		fmt.Fprintf(&sb, "📝 *Notes:* %s\n", *b.Notes)
	}
	sb.WriteString("*Water access required at selected location*")

	return sb.String()
}
