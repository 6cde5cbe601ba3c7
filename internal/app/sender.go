package app

import (
	"context"

	"gopkg.in/telebot.v4"
)

// telegramSender — адаптер бота под интерфейс broadcast.Sender.
// Медиа пересылаются по file_id, уже известному серверам Telegram.
type telegramSender struct {
	bot *telebot.Bot
}

func (s *telegramSender) SendText(_ context.Context, chatID int64, text string, markdown bool) error {
	opts := &telebot.SendOptions{}
	if markdown {
		opts.ParseMode = telebot.ModeMarkdown
	}
	_, err := s.bot.Send(telebot.ChatID(chatID), text, opts)
	return err
}

func (s *telegramSender) SendPhoto(_ context.Context, chatID int64, fileID, caption string) error {
	photo := &telebot.Photo{File: telebot.File{FileID: fileID}, Caption: caption}
	_, err := s.bot.Send(telebot.ChatID(chatID), photo)
	return err
}

func (s *telegramSender) SendVideo(_ context.Context, chatID int64, fileID, caption string) error {
	video := &telebot.Video{File: telebot.File{FileID: fileID}, Caption: caption}
	_, err := s.bot.Send(telebot.ChatID(chatID), video)
	return err
}

func (s *telegramSender) SendDocument(_ context.Context, chatID int64, fileID, caption string) error {
	doc := &telebot.Document{File: telebot.File{FileID: fileID}, Caption: caption}
	_, err := s.bot.Send(telebot.ChatID(chatID), doc)
	return err
}
