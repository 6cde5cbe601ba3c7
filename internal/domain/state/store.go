package state

import (
	"sync"

	"gopkg.in/telebot.v4"

	"ketobot/internal/domain/model"
)

// AdminMode описывает этап админ-потока массовой рассылки.
type AdminMode string

const (
	AdminModeNone             AdminMode = ""
	AdminModeBroadcastWaiting AdminMode = "broadcast_waiting"
	AdminModeBroadcastConfirm AdminMode = "broadcast_confirm"
)

// UserState представляет состояние диалога с пользователем.
// Состояние живет только в памяти процесса (или в Redis при соответствующей
// конфигурации) и не переживает перезапуск.
//
// Жизненный цикл: создается при старте теста, по завершении теста
// перезаписывается сокращенной формой (только TotalScore), при следующем
// старте теста перезаписывается заново. Админ-часть создается при старте
// рассылки и удаляется при отмене или завершении.
type UserState struct {
	TestActive      bool                `json:"test_active"`
	CurrentQuestion int                 `json:"current_question"`
	Answers         []model.GivenAnswer `json:"answers"`
	TotalScore      int                 `json:"total_score"`

	AdminMode        AdminMode        `json:"admin_mode,omitempty"`
	BroadcastMessage *telebot.Message `json:"broadcast_message,omitempty"`
}

// Store определяет интерфейс для работы с состоянием пользователей.
type Store interface {
	Get(userID int64) (UserState, bool)
	Set(userID int64, st UserState) error
	Delete(userID int64) error
}

// MemoryStore — in-memory реализация Store.
type MemoryStore struct {
	data map[int64]UserState
	mu   sync.RWMutex
}

// NewMemoryStore создаёт новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[int64]UserState)}
}

func (m *MemoryStore) Get(userID int64) (UserState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.data[userID]
	return st, ok
}

func (m *MemoryStore) Set(userID int64, st UserState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[userID] = st
	return nil
}

func (m *MemoryStore) Delete(userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID)
	return nil
}
