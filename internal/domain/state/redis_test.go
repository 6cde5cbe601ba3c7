package state

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"ketobot/internal/domain/model"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("не удалось запустить miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, ttl), mr
}

// TestRedisStoreRoundTrip проверяет сохранение и чтение состояния через Redis.
func TestRedisStoreRoundTrip(t *testing.T) {
	store, mr := newTestRedisStore(t, 0)
	userID := int64(10)

	if _, ok := store.Get(userID); ok {
		t.Fatalf("в пустом хранилище не должно быть состояния")
	}

	st := UserState{
		TestActive:      true,
		CurrentQuestion: 1,
		Answers: []model.GivenAnswer{
			{QuestionIndex: 0, AnswerIndex: 4, AnswerText: "46+", Score: 60},
		},
		TotalScore: 60,
	}
	if err := store.Set(userID, st); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}
	if !mr.Exists("bot:state:10") {
		t.Fatalf("ожидался ключ bot:state:10 в Redis")
	}

	got, ok := store.Get(userID)
	if !ok {
		t.Fatalf("состояние должно существовать после Set")
	}
	if got.TotalScore != 60 || got.CurrentQuestion != 1 || !got.TestActive {
		t.Errorf("получено некорректное состояние: %+v", got)
	}
	if len(got.Answers) != 1 || got.Answers[0].AnswerText != "46+" {
		t.Errorf("ответы потерялись при сериализации: %+v", got.Answers)
	}

	if err := store.Delete(userID); err != nil {
		t.Fatalf("Delete вернул ошибку: %v", err)
	}
	if mr.Exists("bot:state:10") {
		t.Errorf("ключ должен быть удален")
	}
}

// TestRedisStoreAdminState проверяет, что админ-часть состояния переживает
// сериализацию в JSON.
func TestRedisStoreAdminState(t *testing.T) {
	store, _ := newTestRedisStore(t, 0)
	userID := int64(42)

	if err := store.Set(userID, UserState{AdminMode: AdminModeBroadcastWaiting}); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}
	got, ok := store.Get(userID)
	if !ok {
		t.Fatalf("состояние должно существовать после Set")
	}
	if got.AdminMode != AdminModeBroadcastWaiting {
		t.Errorf("ожидался режим %q, получен %q", AdminModeBroadcastWaiting, got.AdminMode)
	}
}

// TestRedisStoreTTL проверяет истечение состояния по TTL.
func TestRedisStoreTTL(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	userID := int64(11)

	if err := store.Set(userID, UserState{TotalScore: 140}); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}

	// Миниредис двигает время вручную.
	mr.FastForward(2 * time.Minute)

	if _, ok := store.Get(userID); ok {
		t.Errorf("состояние должно истечь по TTL")
	}
}
