// internal/types/types.go
package types

// EntityID identifies an entity in the registry. Zero is never issued and means "none".
type EntityID uint64

// NoEntity is the zero id.
const NoEntity EntityID = 0
