package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Константы callback-токенов. Это wire-формат между Telegram и диспетчером,
// менять строки без миграции уже разосланных клавиатур нельзя.
const (
	CheckSubscriptionKey     = "check_subscription"
	StartTestKey             = "start_test"
	GetDietKey               = "get_diet"
	AdminBroadcastKey        = "admin_broadcast"
	AdminUsersKey            = "admin_users"
	AdminStatsKey            = "admin_stats"
	AdminCancelKey           = "admin_cancel"
	AdminMenuKey             = "admin_menu"
	AdminBroadcastConfirmKey = "admin_broadcast_confirm"

	answerPrefix = "answer_"
)

// ActionKind определяет тип действия, закодированного в callback-токене.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionCheckSubscription
	ActionStartTest
	ActionAnswer
	ActionGetDiet
	ActionAdminBroadcast
	ActionAdminUsers
	ActionAdminStats
	ActionAdminCancel
	ActionAdminMenu
	ActionAdminBroadcastConfirm
)

// Action — разобранное действие пользователя. Для ActionAnswer заполнены
// индексы вопроса и выбранного варианта.
type Action struct {
	Kind          ActionKind
	QuestionIndex int
	OptionIndex   int
}

// AnswerToken кодирует выбор варианта ответа в callback-токен вида "answer_<q>_<i>".
func AnswerToken(questionIndex, optionIndex int) string {
	return fmt.Sprintf("%s%d_%d", answerPrefix, questionIndex, optionIndex)
}

// ParseAction разбирает callback-данные в типизированное действие.
// Telegram может добавлять к данным префикс \f, поэтому данные предварительно
// очищаются. Нераспознанные токены возвращаются как ActionUnknown —
// решение о том, логировать их или молча отбрасывать, принимает диспетчер.
func ParseAction(data string) Action {
	cleaned := strings.TrimSpace(data)
	cleaned = strings.ReplaceAll(cleaned, "\f", "")
	cleaned = strings.ReplaceAll(cleaned, "\\f", "")

	switch cleaned {
	case CheckSubscriptionKey:
		return Action{Kind: ActionCheckSubscription}
	case StartTestKey:
		return Action{Kind: ActionStartTest}
	case GetDietKey:
		return Action{Kind: ActionGetDiet}
	case AdminBroadcastKey:
		return Action{Kind: ActionAdminBroadcast}
	case AdminUsersKey:
		return Action{Kind: ActionAdminUsers}
	case AdminStatsKey:
		return Action{Kind: ActionAdminStats}
	case AdminCancelKey:
		return Action{Kind: ActionAdminCancel}
	case AdminMenuKey:
		return Action{Kind: ActionAdminMenu}
	case AdminBroadcastConfirmKey:
		return Action{Kind: ActionAdminBroadcastConfirm}
	}

	if strings.HasPrefix(cleaned, answerPrefix) {
		parts := strings.Split(cleaned, "_")
		if len(parts) != 3 {
			return Action{Kind: ActionUnknown}
		}
		qIndex, err := strconv.Atoi(parts[1])
		if err != nil {
			return Action{Kind: ActionUnknown}
		}
		optIndex, err := strconv.Atoi(parts[2])
		if err != nil {
			return Action{Kind: ActionUnknown}
		}
		return Action{Kind: ActionAnswer, QuestionIndex: qIndex, OptionIndex: optIndex}
	}

	return Action{Kind: ActionUnknown}
}
