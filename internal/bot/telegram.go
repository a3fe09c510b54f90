package bot

import (
	"context"
	"errors"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrNoChat is returned when a broadcast is attempted without TELEGRAM_CHAT_ID.
var ErrNoChat = errors.New("telegram chat ID not set")

// sender is the part of tgbotapi.BotAPI used to talk back to chats.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TelegramBot answers league commands and posts scheduled reports to the
// league chat.
type TelegramBot struct {
	api     *tgbotapi.BotAPI
	out     sender
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, reports Reporter) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramBot{api: api, out: api, handler: NewHandler(reports), chatID: chatID}, nil
}

// Start polls for updates until ctx is cancelled. Each command is answered on
// its own goroutine so a cold season report does not stall the chat.
func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Listening for league commands", "username", t.api.Self.UserName)

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 60
	updates := t.api.GetUpdatesChan(cfg)
	defer t.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			go t.reply(ctx, update)
		}
	}
}

func (t *TelegramBot) reply(ctx context.Context, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	if _, err := t.out.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		slog.Debug("Typing indicator failed", "chat", chatID, "error", err)
	}

	msg := t.handler.HandleCommand(ctx, update)
	if _, err := t.out.Send(msg); err != nil {
		slog.Error("Failed to answer command", "chat", chatID, "command", update.Message.Command(), "error", err)
	}
}

// SendMessage posts markdown text to the configured league chat.
func (t *TelegramBot) SendMessage(text string) error {
	if t.chatID == 0 {
		return ErrNoChat
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.out.Send(msg); err != nil {
		slog.Error("Failed to post to league chat", "chat", t.chatID, "error", err)
		return err
	}
	return nil
}
