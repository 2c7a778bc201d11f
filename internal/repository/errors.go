// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrUsernameExists and ErrBuildingExists indicate uniqueness
// violations that should surface as HTTP 409, while ErrVisitorNotFound
// covers every way a scoped checkout can miss: unknown id, a visitor in
// another building, or a visitor that was already checked out. The three
// cases are deliberately indistinguishable to the caller.
package repository

import "errors"

// ErrUsernameExists is returned when a registration reuses a taken username.
var ErrUsernameExists = errors.New("username already exists")

// ErrBuildingExists is returned when a building registration reuses a taken name.
var ErrBuildingExists = errors.New("building name already exists")

// ErrVisitorNotFound is returned when a checkout matches no IN visitor in
// the caller's building. Handlers should translate this into HTTP 404.
var ErrVisitorNotFound = errors.New("visitor not found")
