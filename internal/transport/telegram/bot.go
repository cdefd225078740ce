package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandevgo/weatherbot/internal/config"
	"github.com/sandevgo/weatherbot/internal/service/session"
	"github.com/sandevgo/weatherbot/pkg/log"
	"github.com/sandevgo/weatherbot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Handler interface {
	Handle(ctx context.Context, sess *session.Session, text string) (string, bool)
}

type Bot struct {
	bot      *tele.Bot
	handler  Handler
	sessions *session.Store
	sender   *sender
	ownerID  int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	handler Handler,
	sessions *session.Store,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	// NewBot calls getMe, which fails on flaky networks as well as on bad tokens.
	var b *tele.Bot
	err := retry.NewDefaultRetrier().Do(ctx, func() error {
		var err error
		b, err = tele.NewBot(pref)
		if errors.Is(err, tele.ErrUnauthorized) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		handler:  handler,
		sessions: sessions,
		sender:   newSender(b),
		ownerID:  cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if !bot.allowed(c.Sender()) {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("bot", b.bot.Me.Username).Msg("starting telegram bot")
	go func() {
		<-ctx.Done()
		b.bot.Stop()
	}()
	b.bot.Start()
	return ctx.Err()
}

func (b *Bot) Shutdown(ctx context.Context) error {
	return nil
}

// allowed reports whether sender may talk to the bot. OwnerID 0 serves everyone.
func (b *Bot) allowed(sender *tele.User) bool {
	if b.ownerID == 0 {
		return true
	}
	return sender != nil && sender.ID == b.ownerID
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("telegram-%d", chatID)
}

func (b *Bot) handleStart(c tele.Context) error {
	return b.reply(c, "/help")
}

func (b *Bot) handleMessage(c tele.Context) error {
	return b.reply(c, c.Text())
}

func (b *Bot) reply(c tele.Context, text string) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx).With().Int64("chat", c.Chat().ID).Logger()
	ctx = logger.WithContext(ctx)

	notifyTyping(c, logger)

	sess := b.sessions.Get(sessionID(c.Chat().ID))
	out, ok := b.handler.Handle(ctx, sess, text)
	if !ok {
		return nil
	}

	if err := b.sender.sendMarkdown(ctx, c.Chat(), out); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram reply")
		return err
	}
	return nil
}

// notifyTyping shows the typing indicator.
func notifyTyping(c tele.Context, logger zerolog.Logger) {
	if err := c.Notify(tele.Typing); err != nil {
		logger.Debug().Err(err).Msg("failed to send typing action")
	}
}
