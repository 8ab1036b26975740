package share

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nikoksr/notify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"f1lapvisualiser/pkg/helper"
	"f1lapvisualiser/pkg/laps"
)

const Subject = "New lap time chart:"

var ErrNotConfigured = errors.New("telegram token and chat id are required")

// Report is the per race text that accompanies a shared chart.
type Report struct {
	Title   string
	Summary []laps.CompoundSummary
}

func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString(r.Title)
	for _, s := range r.Summary {
		fmt.Fprintf(&sb, "\n%s: %d laps, best %s, avg %s", s.Compound, s.Laps, helper.DurationToMinutes(s.Best), helper.DurationToMinutes(s.Mean))
	}
	return sb.String()
}

// Message joins the reports, one paragraph per race.
func Message(reports ...Report) string {
	parts := make([]string, 0, len(reports))
	for _, r := range reports {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, "\n\n")
}

// Caption is used for the photo, e.g. "VER(...) 2023 vs VER(...) 2024".
func Caption(reports ...Report) string {
	titles := make([]string, 0, len(reports))
	for _, r := range reports {
		titles = append(titles, r.Title)
	}
	return strings.Join(titles, " vs ")
}

// Telegram posts charts to a single chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	return newTelegram(token, tgbotapi.APIEndpoint, chatID)
}

func newTelegram(token, endpoint string, chatID int64) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, ErrNotConfigured
	}
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to telegram")
	}
	logrus.Debugf("authorized on telegram account %s", bot.Self.UserName)
	return &Telegram{bot: bot, chatID: chatID}, nil
}

// Share sends the chart at path followed by the text summary of every race.
func (t *Telegram) Share(ctx context.Context, path string, reports ...Report) error {
	photo := tgbotapi.NewPhoto(t.chatID, tgbotapi.FilePath(path))
	photo.Caption = Caption(reports...)
	if _, err := t.bot.Send(photo); err != nil {
		return errors.Wrap(err, "sending chart")
	}

	n := notify.NewWithServices(chatNotifier{bot: t.bot, chatIDs: []int64{t.chatID}})
	if err := n.Send(ctx, Subject, Message(reports...)); err != nil {
		return errors.Wrap(err, "sending summary")
	}
	return nil
}

// chatNotifier sends notify messages through the bot as plain text.
type chatNotifier struct {
	bot     *tgbotapi.BotAPI
	chatIDs []int64
}

func (c chatNotifier) Send(ctx context.Context, subject, message string) error {
	for _, id := range c.chatIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := tgbotapi.NewMessage(id, subject+"\n"+message)
		if _, err := c.bot.Send(msg); err != nil {
			return errors.Wrapf(err, "sending to chat %d", id)
		}
	}
	return nil
}
