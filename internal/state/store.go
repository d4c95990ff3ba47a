package state

import "sync"

// Store — общий владелец State. Писатели (потоки источников, поллер) и читатель
// (бот) работают только через него; мьютекс держится лишь на время копии/слияния.
type Store struct {
	mu sync.Mutex
	s  State
}

func NewStore() *Store {
	return &Store{}
}

// Merge применяет обновление атомарно для читателей.
func (st *Store) Merge(p Partial) {
	st.mu.Lock()
	st.s.Merge(p)
	st.mu.Unlock()
}

// Snapshot возвращает копию всей записи.
func (st *Store) Snapshot() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s
}
