package domain

// Carpenter represents a service provider offering bookable slots
// Carpenters are immutable from this service's perspective: they are
// seeded externally and no endpoint mutates them
type Carpenter struct {
	ID   int64
	Name string
}
