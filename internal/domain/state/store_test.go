package state

import (
	"sync"
	"testing"

	"ketobot/internal/domain/model"
)

// TestMemoryStore проверяет базовый цикл Get/Set/Delete.
func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	userID := int64(1)

	if _, ok := store.Get(userID); ok {
		t.Fatalf("в пустом хранилище не должно быть состояния")
	}

	st := UserState{
		TestActive:      true,
		CurrentQuestion: 2,
		Answers: []model.GivenAnswer{
			{QuestionIndex: 0, AnswerIndex: 1, AnswerText: "30–35", Score: 30},
		},
		TotalScore: 30,
	}
	if err := store.Set(userID, st); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}

	got, ok := store.Get(userID)
	if !ok {
		t.Fatalf("состояние должно существовать после Set")
	}
	if got.CurrentQuestion != 2 || got.TotalScore != 30 || len(got.Answers) != 1 {
		t.Errorf("получено некорректное состояние: %+v", got)
	}

	if err := store.Delete(userID); err != nil {
		t.Fatalf("Delete вернул ошибку: %v", err)
	}
	if _, ok := store.Get(userID); ok {
		t.Errorf("состояние должно быть удалено")
	}

	// Повторное удаление не является ошибкой.
	if err := store.Delete(userID); err != nil {
		t.Errorf("повторный Delete вернул ошибку: %v", err)
	}
}

// TestMemoryStoreOverwrite проверяет, что Set перезаписывает состояние целиком.
func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	userID := int64(2)

	if err := store.Set(userID, UserState{TestActive: true, TotalScore: 140}); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}
	if err := store.Set(userID, UserState{TotalScore: 140}); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}

	got, _ := store.Get(userID)
	if got.TestActive {
		t.Errorf("перезапись должна сбрасывать флаг активного теста: %+v", got)
	}
}

// TestMemoryStoreConcurrent проверяет, что хранилище переживает
// конкурентный доступ разных пользователей.
func TestMemoryStoreConcurrent(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_ = store.Set(userID, UserState{TotalScore: int(userID)})
			_, _ = store.Get(userID)
			_ = store.Delete(userID)
		}(int64(i))
	}
	wg.Wait()
}

// TestUserLocksSerialize проверяет, что блокировка сериализует
// чтение-изменение-запись по одному пользователю.
func TestUserLocksSerialize(t *testing.T) {
	locks := NewUserLocks()
	store := NewMemoryStore()
	userID := int64(3)
	_ = store.Set(userID, UserState{})

	const goroutines = 100
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(userID)
			defer unlock()

			st, _ := store.Get(userID)
			st.TotalScore++
			_ = store.Set(userID, st)
		}()
	}
	wg.Wait()

	got, _ := store.Get(userID)
	if got.TotalScore != goroutines {
		t.Errorf("потеряны обновления: ожидалось %d, получено %d", goroutines, got.TotalScore)
	}
}

// TestUserLocksIndependent проверяет, что блокировки разных
// пользователей не мешают друг другу.
func TestUserLocksIndependent(t *testing.T) {
	locks := NewUserLocks()

	unlock1 := locks.Lock(1)
	defer unlock1()

	// Блокировка другого пользователя берется без ожидания.
	done := make(chan struct{})
	go func() {
		unlock2 := locks.Lock(2)
		unlock2()
		close(done)
	}()
	<-done
}
