package notification

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"turfbook/config"
	"turfbook/models"
	"turfbook/services/schedule"
	"turfbook/utils"
)

// TelegramNotificationService posts booking alerts to the facility's admin chat.
type TelegramNotificationService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotificationService connects the bot using the configured token.
func NewTelegramNotificationService() (*TelegramNotificationService, error) {
	token := config.AppConfig.TelegramBotToken
	if token == "" {
		return nil, errors.New("telegram bot token not configured")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect telegram bot: %w", err)
	}
	utils.GetLogger().Info("Telegram bot authorized", zap.String("account", bot.Self.UserName))
	return &TelegramNotificationService{
		bot:    bot,
		chatID: config.AppConfig.TelegramChatID,
	}, nil
}

// SendBookingAlert posts one message describing the new booking.
func (s *TelegramNotificationService) SendBookingAlert(ctx context.Context, n models.BookingNotification) error {
	msg := tgbotapi.NewMessage(s.chatID, FormatBookingAlert(n))
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// FormatBookingAlert renders the admin chat message for a booking.
func FormatBookingAlert(n models.BookingNotification) string {
	timeDisplay := fmt.Sprintf("%s - %s (%s)",
		formatTime12(n.StartTime), formatTime12(n.EndTime), formatDateShort(n.Date))

	var b strings.Builder
	b.WriteString("📢 New Booking!\n\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", n.CustomerName)
	fmt.Fprintf(&b, "📍 Sport: %s\n", n.Sport)
	fmt.Fprintf(&b, "🏟 Court: %s\n", n.CourtName)
	fmt.Fprintf(&b, "⏰ Time: %s\n", timeDisplay)
	fmt.Fprintf(&b, "👥 People: %d\n", n.PeopleCount)
	fmt.Fprintf(&b, "💰 Price: ₹%d", n.Price)
	return b.String()
}

// formatTime12 renders "HH:MM" as a 12-hour clock time, e.g. "5:30 PM".
func formatTime12(t string) string {
	m, err := schedule.TimeToMinutes(t)
	if err != nil {
		return t
	}
	h := m / 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m%60, period)
}

// formatDateShort renders "YYYY-MM-DD" as e.g. "Jun 10".
func formatDateShort(date string) string {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return date
	}
	return d.Month().String()[:3] + " " + strconv.Itoa(d.Day())
}
