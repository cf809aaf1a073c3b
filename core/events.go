package core

// Store mutation actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// StoreEvent describes a single committed mutation of an entity store
// table. Observers receive it synchronously, after the write completes.
type StoreEvent struct {
	Entity string // users, notices, attendance, assignments, videos, fees
	Action string
}

// StoreObserver is notified after every store mutation. Observers must
// not mutate the store from within the callback.
type StoreObserver func(StoreEvent)
