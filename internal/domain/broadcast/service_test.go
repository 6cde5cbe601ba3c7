package broadcast

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"ketobot/internal/domain/state"
)

const adminID = int64(42)

// fakeSender записывает отправки и возвращает ошибку для указанных чатов.
type fakeSender struct {
	sentText map[int64]string
	markdown map[int64]bool
	media    map[int64]string
	failFor  map[int64]bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		sentText: make(map[int64]string),
		markdown: make(map[int64]bool),
		media:    make(map[int64]string),
		failFor:  make(map[int64]bool),
	}
}

func (f *fakeSender) SendText(_ context.Context, chatID int64, text string, markdown bool) error {
	if f.failFor[chatID] {
		return errors.New("чат недоступен")
	}
	f.sentText[chatID] = text
	f.markdown[chatID] = markdown
	return nil
}

func (f *fakeSender) SendPhoto(_ context.Context, chatID int64, fileID, _ string) error {
	if f.failFor[chatID] {
		return errors.New("чат недоступен")
	}
	f.media[chatID] = "photo:" + fileID
	return nil
}

func (f *fakeSender) SendVideo(_ context.Context, chatID int64, fileID, _ string) error {
	if f.failFor[chatID] {
		return errors.New("чат недоступен")
	}
	f.media[chatID] = "video:" + fileID
	return nil
}

func (f *fakeSender) SendDocument(_ context.Context, chatID int64, fileID, _ string) error {
	if f.failFor[chatID] {
		return errors.New("чат недоступен")
	}
	f.media[chatID] = "document:" + fileID
	return nil
}

// fakeRecipients возвращает фиксированный список получателей.
type fakeRecipients struct {
	ids []int64
	err error
}

func (f *fakeRecipients) ListRecipientIDs(_ context.Context) ([]int64, error) {
	return f.ids, f.err
}

func newTestService(ids []int64, sender *fakeSender) (*Service, *state.MemoryStore) {
	states := state.NewMemoryStore()
	svc := NewService(adminID, states, &fakeRecipients{ids: ids}, sender, 0, zap.NewNop())
	return svc, states
}

// prepareBroadcast проводит админа через первые две фазы рассылки.
func prepareBroadcast(t *testing.T, svc *Service, msg *telebot.Message) {
	t.Helper()
	if err := svc.Start(adminID); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}
	if _, accepted, err := svc.HandleIncoming(context.Background(), adminID, msg); err != nil || !accepted {
		t.Fatalf("HandleIncoming: accepted=%v, err=%v", accepted, err)
	}
}

// TestBroadcastFullFlow проверяет полный цикл рассылки: ошибки отдельных
// получателей считаются, но не прерывают рассылку.
func TestBroadcastFullFlow(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5}
	sender := newFakeSender()
	sender.failFor[2] = true
	sender.failFor[4] = true
	svc, states := newTestService(ids, sender)

	prepareBroadcast(t, svc, &telebot.Message{Text: "Привет всем"})

	report, err := svc.Confirm(context.Background(), adminID)
	if err != nil {
		t.Fatalf("Confirm вернул ошибку: %v", err)
	}

	if report.Total != 5 || report.Sent != 3 || report.Errors != 2 {
		t.Errorf("ожидался отчет {Sent:3 Errors:2 Total:5}, получен %+v", report)
	}
	for _, id := range []int64{1, 3, 5} {
		if sender.sentText[id] != "Привет всем" {
			t.Errorf("получатель %d не получил сообщение", id)
		}
	}

	// Состояние админа очищено по завершении.
	if _, ok := states.Get(adminID); ok {
		t.Errorf("состояние админа должно быть удалено после рассылки")
	}
}

// TestBroadcastMarkdownDetection проверяет, что разметка включается
// только при наличии управляющих символов в тексте.
func TestBroadcastMarkdownDetection(t *testing.T) {
	cases := []struct {
		name         string
		text         string
		wantMarkdown bool
	}{
		{"обычный текст", "просто текст", false},
		{"жирный текст", "важно: *не пропусти*", true},
		{"курсив", "_акцент_", true},
		{"моноширинный", "команда `start`", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := newFakeSender()
			svc, _ := newTestService([]int64{1}, sender)
			prepareBroadcast(t, svc, &telebot.Message{Text: tc.text})

			if _, err := svc.Confirm(context.Background(), adminID); err != nil {
				t.Fatalf("Confirm вернул ошибку: %v", err)
			}
			if sender.markdown[1] != tc.wantMarkdown {
				t.Errorf("текст %q: ожидался markdown=%v", tc.text, tc.wantMarkdown)
			}
		})
	}
}

// TestBroadcastMediaTypes проверяет выбор примитива отправки по типу сообщения.
func TestBroadcastMediaTypes(t *testing.T) {
	cases := []struct {
		name string
		msg  *telebot.Message
		want string
	}{
		{"фото", &telebot.Message{Photo: &telebot.Photo{File: telebot.File{FileID: "p1"}}}, "photo:p1"},
		{"видео", &telebot.Message{Video: &telebot.Video{File: telebot.File{FileID: "v1"}}}, "video:v1"},
		{"документ", &telebot.Message{Document: &telebot.Document{File: telebot.File{FileID: "d1"}}}, "document:d1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := newFakeSender()
			svc, _ := newTestService([]int64{1}, sender)
			prepareBroadcast(t, svc, tc.msg)

			if _, err := svc.Confirm(context.Background(), adminID); err != nil {
				t.Fatalf("Confirm вернул ошибку: %v", err)
			}
			if sender.media[1] != tc.want {
				t.Errorf("ожидалась отправка %q, получено %q", tc.want, sender.media[1])
			}
		})
	}
}

// TestBroadcastUnauthorized проверяет, что все админ-операции закрыты
// для обычных пользователей и не трогают их состояние.
func TestBroadcastUnauthorized(t *testing.T) {
	svc, states := newTestService([]int64{1}, newFakeSender())
	stranger := int64(7)

	if svc.Authorized(stranger) {
		t.Errorf("посторонний пользователь не должен считаться админом")
	}
	if err := svc.Start(stranger); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("Start: ожидалась ErrNotAuthorized, получено %v", err)
	}
	if _, err := svc.Confirm(context.Background(), stranger); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("Confirm: ожидалась ErrNotAuthorized, получено %v", err)
	}

	// Сообщение постороннего игнорируется молча.
	total, accepted, err := svc.HandleIncoming(context.Background(), stranger, &telebot.Message{Text: "текст"})
	if total != 0 || accepted || err != nil {
		t.Errorf("сообщение постороннего должно игнорироваться: total=%d accepted=%v err=%v", total, accepted, err)
	}
	if _, ok := states.Get(stranger); ok {
		t.Errorf("состояние постороннего не должно создаваться")
	}
}

// TestBroadcastIncomingOutsideWaiting проверяет, что сообщение админа
// вне режима ожидания не принимается.
func TestBroadcastIncomingOutsideWaiting(t *testing.T) {
	svc, _ := newTestService([]int64{1}, newFakeSender())

	total, accepted, err := svc.HandleIncoming(context.Background(), adminID, &telebot.Message{Text: "текст"})
	if total != 0 || accepted || err != nil {
		t.Errorf("сообщение вне режима ожидания должно игнорироваться: total=%d accepted=%v err=%v", total, accepted, err)
	}
}

// TestBroadcastNoRecipients проверяет прерывание потока при пустой базе.
func TestBroadcastNoRecipients(t *testing.T) {
	svc, _ := newTestService(nil, newFakeSender())

	if err := svc.Start(adminID); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}
	_, accepted, err := svc.HandleIncoming(context.Background(), adminID, &telebot.Message{Text: "текст"})
	if !accepted {
		t.Fatalf("сообщение админа в режиме ожидания должно быть принято")
	}
	if !errors.Is(err, ErrNoRecipients) {
		t.Errorf("ожидалась ErrNoRecipients, получено %v", err)
	}
}

// TestBroadcastConfirmWithoutPending проверяет подтверждение без
// сохраненного сообщения.
func TestBroadcastConfirmWithoutPending(t *testing.T) {
	svc, states := newTestService([]int64{1}, newFakeSender())

	if _, err := svc.Confirm(context.Background(), adminID); !errors.Is(err, ErrNoPendingBroadcast) {
		t.Errorf("без состояния ожидалась ErrNoPendingBroadcast, получено %v", err)
	}

	// Режим ожидания без сообщения тоже не дает подтвердить рассылку.
	if err := states.Set(adminID, state.UserState{AdminMode: state.AdminModeBroadcastWaiting}); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), adminID); !errors.Is(err, ErrNoPendingBroadcast) {
		t.Errorf("в режиме ожидания ожидалась ErrNoPendingBroadcast, получено %v", err)
	}
}

// TestBroadcastCancel проверяет, что отмена очищает состояние на любом этапе.
func TestBroadcastCancel(t *testing.T) {
	svc, states := newTestService([]int64{1}, newFakeSender())

	if err := svc.Start(adminID); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}
	svc.Cancel(adminID)
	if _, ok := states.Get(adminID); ok {
		t.Errorf("после отмены состояние должно быть удалено")
	}

	// Подтверждение после отмены невозможно.
	if _, err := svc.Confirm(context.Background(), adminID); !errors.Is(err, ErrNoPendingBroadcast) {
		t.Errorf("после отмены ожидалась ErrNoPendingBroadcast, получено %v", err)
	}
}

// TestBroadcastContextCancellation проверяет, что отмена контекста
// останавливает рассылку и очищает состояние админа.
func TestBroadcastContextCancellation(t *testing.T) {
	sender := newFakeSender()
	svc, states := newTestService([]int64{1, 2, 3}, sender)
	prepareBroadcast(t, svc, &telebot.Message{Text: "текст"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Confirm(ctx, adminID); !errors.Is(err, context.Canceled) {
		t.Errorf("ожидалась context.Canceled, получено %v", err)
	}
	if _, ok := states.Get(adminID); ok {
		t.Errorf("состояние админа должно быть удалено и при отмене")
	}
}
