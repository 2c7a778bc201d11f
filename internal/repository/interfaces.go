package repository

import "context"

// Store interfaces consumed by the HTTP handlers. The concrete *Repo types
// above implement them; tests substitute lightweight fakes.

// UserStore persists and looks up guard/admin accounts.
type UserStore interface {
	Create(ctx context.Context, username, password, role string, buildingID uint64, cost int) (uint64, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uint64) (User, error)
}

// BuildingStore persists and lists buildings.
type BuildingStore interface {
	Create(ctx context.Context, name, address string) (uint64, error)
	ListAll(ctx context.Context) ([]*Building, error)
}

// VisitorStore is the building-scoped visitor ledger.
type VisitorStore interface {
	Create(ctx context.Context, v *Visitor) error
	ListByBuilding(ctx context.Context, buildingID uint64) ([]*Visitor, error)
	Checkout(ctx context.Context, id, buildingID uint64) error
}
