package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot        *tgbotapi.BotAPI
	pendingTTL time.Duration
	logger     logger.Logger
}

func NewTelegramNotifier(token string, pendingTTL time.Duration, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, pendingTTL: pendingTTL, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, pendingTTL: pendingTTL, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронь создана!*\n\n"+"Жильё: %s\n"+"%s\n"+"К оплате: %s\n"+"Оплатите бронь в течение %s, иначе она будет отменена.",
		listing.Title, stay(booking), money(booking.TotalPrice, booking.Currency), n.pendingTTL.String(),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование подтверждено!*\n\n"+"Жильё: %s\n"+"%s",
		listing.Title, stay(booking),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingFailed(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование не состоялось*\n\n"+"Жильё: %s\n"+"%s\n"+"Даты заняты, оплата не прошла или истекло время оплаты.",
		listing.Title, stay(booking),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование отменено*\n\n"+"Жильё: %s\n"+"%s",
		listing.Title, stay(booking),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func stay(b *domain.Booking) string {
	return fmt.Sprintf("Заезд: %s\nВыезд: %s",
		b.CheckIn.Format("02.01.2006"), b.CheckOut.Format("02.01.2006"))
}

func money(minor int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", minor/100, minor%100, currency)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
