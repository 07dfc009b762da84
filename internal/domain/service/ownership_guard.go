package service

// OwnershipGuard decides whether a requester may mutate an owned resource.
// It is a pure comparison of the resource's recorded owner id against the
// numeric user id carried in the requester's identity claims. Username and
// email are never consulted; only the id is guaranteed unique and immutable
// for the life of the record.
type OwnershipGuard struct{}

// NewOwnershipGuard constructs the guard.
func NewOwnershipGuard() *OwnershipGuard {
	return &OwnershipGuard{}
}

// Authorize reports whether the requester owns the resource. Callers must
// resolve the resource first: a missing resource is "not found", never a
// guard decision.
func (g *OwnershipGuard) Authorize(resourceOwnerID, requesterID int64) bool {
	return resourceOwnerID == requesterID
}
