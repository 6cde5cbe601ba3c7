package broadcast

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"ketobot/internal/domain/state"
)

var (
	// ErrNotAuthorized возвращается при попытке админ-действия
	// непривилегированным пользователем.
	ErrNotAuthorized = errors.New("нет доступа к админ-панели")
	// ErrNoPendingBroadcast возвращается при подтверждении рассылки
	// без сохраненного сообщения.
	ErrNoPendingBroadcast = errors.New("сообщение для рассылки не найдено")
	// ErrNoRecipients возвращается, если в базе нет ни одного получателя.
	ErrNoRecipients = errors.New("нет пользователей для рассылки")
)

// Sender отправляет сообщения получателям рассылки. Абстракция над ботом,
// чтобы движок рассылки можно было тестировать без Telegram.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string, markdown bool) error
	SendPhoto(ctx context.Context, chatID int64, fileID, caption string) error
	SendVideo(ctx context.Context, chatID int64, fileID, caption string) error
	SendDocument(ctx context.Context, chatID int64, fileID, caption string) error
}

// RecipientSource возвращает список получателей рассылки.
type RecipientSource interface {
	ListRecipientIDs(ctx context.Context) ([]int64, error)
}

// Report — итог рассылки.
type Report struct {
	Sent   int
	Errors int
	Total  int
}

// Service реализует двухфазную массовую рассылку: админ присылает сообщение,
// подтверждает отправку, после чего сообщение разносится всем пользователям.
type Service struct {
	adminID    int64
	states     state.Store
	recipients RecipientSource
	sender     Sender
	sendDelay  time.Duration
	logger     *zap.Logger
}

// NewService создает новый Service. sendDelay — обязательная пауза между
// отправками, чтобы не упереться в лимиты Telegram.
func NewService(adminID int64, states state.Store, recipients RecipientSource, sender Sender, sendDelay time.Duration, logger *zap.Logger) *Service {
	return &Service{
		adminID:    adminID,
		states:     states,
		recipients: recipients,
		sender:     sender,
		sendDelay:  sendDelay,
		logger:     logger,
	}
}

// Authorized сообщает, является ли пользователь привилегированным админом.
func (s *Service) Authorized(userID int64) bool {
	return userID == s.adminID
}

// Start переводит админа в режим ожидания сообщения для рассылки.
func (s *Service) Start(userID int64) error {
	if !s.Authorized(userID) {
		return ErrNotAuthorized
	}
	return s.states.Set(userID, state.UserState{AdminMode: state.AdminModeBroadcastWaiting})
}

// HandleIncoming обрабатывает входящее сообщение админа в режиме ожидания.
// Возвращает число получателей и признак того, что сообщение принято.
// Сообщения не-админов и сообщения вне режима ожидания игнорируются молча,
// чтобы не мешать обычным пользовательским потокам.
func (s *Service) HandleIncoming(ctx context.Context, userID int64, msg *telebot.Message) (int, bool, error) {
	if !s.Authorized(userID) {
		return 0, false, nil
	}
	us, ok := s.states.Get(userID)
	if !ok || us.AdminMode != state.AdminModeBroadcastWaiting {
		return 0, false, nil
	}

	ids, err := s.recipients.ListRecipientIDs(ctx)
	if err != nil {
		return 0, true, err
	}
	if len(ids) == 0 {
		return 0, true, ErrNoRecipients
	}

	us.BroadcastMessage = msg
	us.AdminMode = state.AdminModeBroadcastConfirm
	if err := s.states.Set(userID, us); err != nil {
		return 0, true, err
	}
	return len(ids), true, nil
}

// Confirm выполняет рассылку сохраненного сообщения всем получателям.
// Ошибки отправки отдельным получателям считаются, но не прерывают рассылку.
// Состояние админа очищается безусловно по завершении.
func (s *Service) Confirm(ctx context.Context, userID int64) (Report, error) {
	if !s.Authorized(userID) {
		return Report{}, ErrNotAuthorized
	}
	us, ok := s.states.Get(userID)
	if !ok || us.AdminMode != state.AdminModeBroadcastConfirm {
		return Report{}, ErrNoPendingBroadcast
	}
	msg := us.BroadcastMessage
	if msg == nil {
		return Report{}, ErrNoPendingBroadcast
	}

	ids, err := s.recipients.ListRecipientIDs(ctx)
	if err != nil {
		return Report{}, err
	}

	report := Report{Total: len(ids)}
	for _, chatID := range ids {
		select {
		case <-ctx.Done():
			_ = s.states.Delete(userID)
			return report, ctx.Err()
		default:
		}

		if err := s.sendTo(ctx, chatID, msg); err != nil {
			s.logger.Error("ошибка отправки сообщения получателю",
				zap.Int64("chat_id", chatID), zap.Error(err))
			report.Errors++
		} else {
			report.Sent++
		}

		// Пауза между отправками обязательна: лимиты Telegram.
		time.Sleep(s.sendDelay)
	}

	_ = s.states.Delete(userID)
	return report, nil
}

// Cancel очищает админ-состояние независимо от текущего этапа.
func (s *Service) Cancel(userID int64) {
	_ = s.states.Delete(userID)
}

// sendTo отправляет сообщение одному получателю, выбирая примитив по типу
// сообщения. Подпись сохраняется для медиа; разметка применяется к тексту
// только при наличии управляющих символов Markdown.
func (s *Service) sendTo(ctx context.Context, chatID int64, msg *telebot.Message) error {
	switch {
	case msg.Text != "":
		markdown := strings.ContainsAny(msg.Text, "*_`")
		return s.sender.SendText(ctx, chatID, msg.Text, markdown)
	case msg.Photo != nil:
		return s.sender.SendPhoto(ctx, chatID, msg.Photo.FileID, msg.Caption)
	case msg.Video != nil:
		return s.sender.SendVideo(ctx, chatID, msg.Video.FileID, msg.Caption)
	case msg.Document != nil:
		return s.sender.SendDocument(ctx, chatID, msg.Document.FileID, msg.Caption)
	}
	// Прочие типы сообщений не поддерживаются и пропускаются без ошибки.
	return nil
}
