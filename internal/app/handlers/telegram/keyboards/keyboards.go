package keyboards

import (
	"gopkg.in/telebot.v4"

	"ketobot/internal/domain/messages"
	"ketobot/internal/domain/model"
	"ketobot/internal/domain/quiz"
)

// Subscription — клавиатура приглашения к подписке: ссылка на канал
// и кнопка повторной проверки.
func Subscription(channelURL string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: messages.BtnSubscribe, URL: channelURL}},
			{{Text: messages.BtnCheckSub, Data: model.CheckSubscriptionKey}},
		},
	}
}

// TestInvitation — клавиатура с единственной кнопкой запуска теста.
func TestInvitation() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: messages.BtnStartTest, Data: model.StartTestKey}},
		},
	}
}

// Question — клавиатура вопроса: по одной кнопке на вариант ответа,
// индексы вопроса и варианта кодируются в callback-токене.
func Question(index int) *telebot.ReplyMarkup {
	var rows [][]telebot.InlineButton
	for i, opt := range quiz.Questions[index].Options {
		rows = append(rows, []telebot.InlineButton{
			{Text: opt.Text, Data: model.AnswerToken(index, i)},
		})
	}
	return &telebot.ReplyMarkup{InlineKeyboard: rows}
}

// GetDiet — клавиатура результата с кнопкой получения рациона.
func GetDiet() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: messages.BtnGetDiet, Data: model.GetDietKey}},
		},
	}
}

// AdminMenu — главное меню админ-панели.
func AdminMenu() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: messages.BtnAdminBroadcast, Data: model.AdminBroadcastKey}},
			{{Text: messages.BtnAdminUsers, Data: model.AdminUsersKey}},
			{{Text: messages.BtnAdminStats, Data: model.AdminStatsKey}},
		},
	}
}

// AdminCancel — одиночная кнопка отмены админ-действия.
func AdminCancel() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: messages.BtnAdminCancel, Data: model.AdminCancelKey}},
		},
	}
}

// AdminConfirm — подтверждение рассылки.
func AdminConfirm() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: messages.BtnAdminConfirm, Data: model.AdminBroadcastConfirmKey}},
			{{Text: messages.BtnAdminCancel, Data: model.AdminCancelKey}},
		},
	}
}

// AdminRefresh — обновление списка/статистики и возврат в меню.
func AdminRefresh(refreshKey string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: messages.BtnAdminRefresh, Data: refreshKey}},
			{{Text: messages.BtnAdminBack, Data: model.AdminMenuKey}},
		},
	}
}

// AdminBackToMenu — возврат в админ-панель после рассылки.
func AdminBackToMenu() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: messages.BtnAdminToMenu, Data: model.AdminMenuKey}},
		},
	}
}
