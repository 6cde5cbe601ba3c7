package admin_handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"ketobot/internal/app/handlers/telegram/keyboards"
	"ketobot/internal/domain/broadcast"
	"ketobot/internal/domain/messages"
	"ketobot/internal/domain/model"
	resultsService "ketobot/internal/domain/results/service"
	usersService "ketobot/internal/domain/users/service"
)

// Telegram ограничивает длину сообщения 4096 символами; список пользователей
// обрезается с запасом.
const usersListLimit = 3500

// AdminHandler обрабатывает команду /admin и все callback'и админ-панели.
// Доступ разрешен единственному привилегированному пользователю; всем
// остальным возвращается фиксированный отказ без изменения состояния.
type AdminHandler struct {
	broadcasts    *broadcast.Service
	userService   *usersService.UserService
	resultService *resultsService.ResultService
	logger        *zap.Logger
}

// NewAdminHandler возвращает структуру обработчика
func NewAdminHandler(
	broadcasts *broadcast.Service,
	userService *usersService.UserService,
	resultService *resultsService.ResultService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		broadcasts:    broadcasts,
		userService:   userService,
		resultService: resultService,
		logger:        logger,
	}
}

// HandleCommand обрабатывает команду /admin
func (h *AdminHandler) HandleCommand(c telebot.Context) error {
	if !h.broadcasts.Authorized(c.Sender().ID) {
		return c.Send(messages.AdminDenied)
	}
	return c.Send(messages.AdminMenu, keyboards.AdminMenu(), telebot.ModeMarkdown)
}

// Menu показывает главное админ-меню поверх текущего сообщения
func (h *AdminHandler) Menu(c telebot.Context) error {
	if !h.broadcasts.Authorized(c.Sender().ID) {
		return c.Edit(messages.AdminDenied)
	}
	return c.Edit(messages.AdminMenu, keyboards.AdminMenu(), telebot.ModeMarkdown)
}

// BroadcastStart переводит админа в режим ожидания сообщения для рассылки
func (h *AdminHandler) BroadcastStart(c telebot.Context) error {
	if err := h.broadcasts.Start(c.Sender().ID); err != nil {
		if errors.Is(err, broadcast.ErrNotAuthorized) {
			return c.Edit(messages.AdminDenied)
		}
		h.logger.Error("не удалось начать рассылку", zap.Error(err))
		return c.Edit(messages.AdminPrepareFailed)
	}
	return c.Edit(messages.AdminBroadcastPrompt, keyboards.AdminCancel(), telebot.ModeMarkdown)
}

// HandleText обрабатывает входящее сообщение админа в режиме ожидания рассылки.
// Сообщения остальных пользователей (и админа вне этого режима) игнорируются.
func (h *AdminHandler) HandleText(c telebot.Context) error {
	total, accepted, err := h.broadcasts.HandleIncoming(context.Background(), c.Sender().ID, c.Message())
	if !accepted {
		return nil
	}
	if err != nil {
		if errors.Is(err, broadcast.ErrNoRecipients) {
			return c.Send(messages.AdminNoUsers)
		}
		h.logger.Error("не удалось подготовить рассылку", zap.Error(err))
		return c.Send(messages.AdminPrepareFailed)
	}

	confirmText := fmt.Sprintf("📢 **Подтверждение рассылки**\n\n"+
		"Сообщение будет отправлено **%d** пользователям.\n\n"+
		"Подтвердите отправку:", total)
	return c.Send(confirmText, keyboards.AdminConfirm(), telebot.ModeMarkdown)
}

// Confirm запускает рассылку. Сам фан-аут выполняется в отдельной горутине,
// чтобы не блокировать обработку остальных обновлений; отчет отправляется
// по завершении.
func (h *AdminHandler) Confirm(c telebot.Context) error {
	userID := c.Sender().ID
	if !h.broadcasts.Authorized(userID) {
		return c.Edit(messages.AdminDenied)
	}

	progressText := "📢 **Рассылка запущена...**\n\n" +
		"Отправка сообщения пользователям.\n" +
		"Это может занять несколько минут."
	if err := c.Edit(progressText, telebot.ModeMarkdown); err != nil {
		h.logger.Warn("не удалось обновить сообщение о запуске рассылки", zap.Error(err))
	}

	go func() {
		report, err := h.broadcasts.Confirm(context.Background(), userID)
		if err != nil {
			if errors.Is(err, broadcast.ErrNoPendingBroadcast) {
				_ = c.Edit(messages.AdminBroadcastNotFound)
				return
			}
			h.logger.Error("ошибка выполнения рассылки", zap.Error(err))
			_ = c.Edit(messages.AdminBroadcastFailed)
			return
		}

		reportText := fmt.Sprintf("📢 **Рассылка завершена!**\n\n"+
			"✅ Отправлено: %d\n"+
			"❌ Ошибок: %d\n"+
			"📊 Всего пользователей: %d", report.Sent, report.Errors, report.Total)
		if err := c.Edit(reportText, keyboards.AdminBackToMenu(), telebot.ModeMarkdown); err != nil {
			h.logger.Error("не удалось отправить отчет о рассылке", zap.Error(err))
		}
	}()

	return nil
}

// Cancel отменяет текущее админ-действие и возвращает меню
func (h *AdminHandler) Cancel(c telebot.Context) error {
	if !h.broadcasts.Authorized(c.Sender().ID) {
		return c.Edit(messages.AdminDenied)
	}
	h.broadcasts.Cancel(c.Sender().ID)
	return c.Edit(messages.AdminMenu, keyboards.AdminMenu(), telebot.ModeMarkdown)
}

// UsersList показывает список пользователей со статусом прохождения теста
func (h *AdminHandler) UsersList(c telebot.Context) error {
	if !h.broadcasts.Authorized(c.Sender().ID) {
		return c.Edit(messages.AdminDenied)
	}

	users, err := h.userService.ListUsers(context.Background())
	if err != nil {
		h.logger.Error("не удалось получить список пользователей", zap.Error(err))
		return c.Edit(messages.AdminUsersFailed)
	}
	if len(users) == 0 {
		return c.Edit(messages.AdminUsersEmpty)
	}

	var b strings.Builder
	b.WriteString("👥 **Список пользователей:**\n\n")
	for i, user := range users {
		username := user.Username
		if username == "" {
			username = "Нет username"
		}
		fullName := strings.TrimSpace(user.FirstName + " " + user.LastName)
		status := "❌"
		if user.TestCompleted {
			status = "✅"
		}
		b.WriteString(fmt.Sprintf("%d. @%s (%s) %s\n", i+1, username, fullName, status))

		if b.Len() > usersListLimit {
			b.WriteString(fmt.Sprintf("\n... и еще %d пользователей", len(users)-i-1))
			break
		}
	}
	b.WriteString(fmt.Sprintf("\n📊 **Всего пользователей:** %d", len(users)))
	b.WriteString("\n✅ - прошел тест, ❌ - не проходил тест")

	return c.Edit(b.String(), keyboards.AdminRefresh(model.AdminUsersKey), telebot.ModeMarkdown)
}

// Stats показывает статистику по пользователям и тестам
func (h *AdminHandler) Stats(c telebot.Context) error {
	if !h.broadcasts.Authorized(c.Sender().ID) {
		return c.Edit(messages.AdminDenied)
	}

	ctx := context.Background()
	totalUsers, err := h.userService.CountUsers(ctx)
	if err != nil {
		h.logger.Error("не удалось получить статистику", zap.Error(err))
		return c.Edit(messages.AdminStatsFailed)
	}
	totalTests, err := h.resultService.CountResults(ctx)
	if err != nil {
		h.logger.Error("не удалось получить статистику", zap.Error(err))
		return c.Edit(messages.AdminStatsFailed)
	}
	completedUsers, err := h.userService.CountCompleted(ctx)
	if err != nil {
		h.logger.Error("не удалось получить статистику", zap.Error(err))
		return c.Edit(messages.AdminStatsFailed)
	}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	newUsersWeek, err := h.userService.CountCreatedSince(ctx, weekAgo)
	if err != nil {
		h.logger.Error("не удалось получить статистику", zap.Error(err))
		return c.Edit(messages.AdminStatsFailed)
	}

	conversion := 0.0
	if totalUsers > 0 {
		conversion = float64(completedUsers) / float64(totalUsers) * 100
	}

	statsText := fmt.Sprintf(`📊 **Статистика бота:**

👥 **Пользователи:**
• Всего: %d
• За неделю: %d
• Прошли тест: %d

📝 **Тесты:**
• Всего пройдено: %d
• Конверсия: %.1f%%

📅 **Дата:** %s`,
		totalUsers, newUsersWeek, completedUsers, totalTests, conversion,
		time.Now().Format("02.01.2006 15:04"))

	return c.Edit(statsText, keyboards.AdminRefresh(model.AdminStatsKey), telebot.ModeMarkdown)
}
