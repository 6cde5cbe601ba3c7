package state

import "sync"

// UserLocks обеспечивает взаимное исключение по идентификатору пользователя.
// Telegram может доставлять обновления одного пользователя параллельно,
// а Store не защищает от потерянных обновлений при чтении-изменении-записи,
// поэтому диспетчер обязан сериализовать обработку событий одного пользователя.
type UserLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewUserLocks создаёт новый набор блокировок.
func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[int64]*sync.Mutex)}
}

// Lock захватывает блокировку пользователя и возвращает функцию освобождения.
func (l *UserLocks) Lock(userID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
