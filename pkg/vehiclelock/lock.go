package vehiclelock

import "sync"

// Table hands out one mutex per vehicle id so that the
// read-conflict-check-then-write sequences of rental opening, rental
// closing and maintenance scheduling execute atomically per vehicle. Two
// concurrent requests for the same vehicle serialize; requests for
// different vehicles never contend.
//
// Locks are created on first use and kept for the life of the process. A
// fleet is small enough that reclaiming them is not worth the bookkeeping.
type Table struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewTable() *Table {
	return &Table{
		locks: make(map[int64]*sync.Mutex),
	}
}

// Lock acquires the mutex for vehicleID, creating it if needed.
func (t *Table) Lock(vehicleID int64) {
	t.get(vehicleID).Lock()
}

// Unlock releases the mutex for vehicleID.
func (t *Table) Unlock(vehicleID int64) {
	t.get(vehicleID).Unlock()
}

func (t *Table) get(vehicleID int64) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	lock, ok := t.locks[vehicleID]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[vehicleID] = lock
	}
	return lock
}
