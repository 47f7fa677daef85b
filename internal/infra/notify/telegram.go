package notify

import (
	"context"
	"fmt"
	"strings"

	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSink mirrors events to an admin chat.
type TelegramSink struct {
	bot    messageSender
	chatID int64
}

func NewTelegramSink(token string, chatID int64) (*TelegramSink, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errs.Wrap(err, "create telegram bot")
	}
	return newTelegramSink(bot, chatID), nil
}

func newTelegramSink(bot messageSender, chatID int64) *TelegramSink {
	return &TelegramSink{bot: bot, chatID: chatID}
}

func (s *TelegramSink) Name() string { return "telegram" }

// The bot API call is not context aware; the dispatcher timeout only bounds
// the wait between sinks.
func (s *TelegramSink) Publish(ctx context.Context, e commands.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(s.chatID, formatEvent(e))
	if _, err := s.bot.Send(msg); err != nil {
		return errs.Wrap(err, "send telegram message")
	}
	return nil
}

func formatEvent(e commands.Event) string {
	var b strings.Builder
	switch e.Type {
	case commands.EventTicketSold:
		b.WriteString("Ticket sold\n")
	case commands.EventPaymentSubmitted:
		b.WriteString("Payment reference submitted\n")
	default:
		fmt.Fprintf(&b, "%s\n", e.Type)
	}
	fmt.Fprintf(&b, "Match: %s\n", e.Match)
	fmt.Fprintf(&b, "Quantity: %d\n", e.Quantity)
	fmt.Fprintf(&b, "Amount: Rs. %s\n", e.Amount.StringFixed(2))
	if e.Buyer != "" {
		fmt.Fprintf(&b, "Buyer: %s\n", e.Buyer)
	}
	if e.Reference != "" {
		fmt.Fprintf(&b, "Reference: %s\n", e.Reference)
	}
	fmt.Fprintf(&b, "Ticket: %s", e.TicketID)
	return b.String()
}
