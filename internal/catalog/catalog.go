// Package catalog is the registry of reservable workshop equipment. The
// registry is seeded once at startup and immutable afterwards; there are
// no create/edit/delete operations in this system.
package catalog

import "oficinareserva/pkg/model"

// UnknownEquipmentName is the fallback used when a reservation references
// an id the catalog does not know. Creation degrades to this placeholder
// instead of failing: a stale catalog must not block a booking.
const UnknownEquipmentName = "Desconhecido"

type Catalog struct {
	items []model.Equipment
	byID  map[string]model.Equipment
}

// DefaultEquipment is the workshop's machine park.
func DefaultEquipment() []model.Equipment {
	return []model.Equipment{
		{ID: "eq-1", Name: "Plataforma Pantográfica 1", Color: "blue"},
		{ID: "eq-2", Name: "Plataforma Pantográfica 2", Color: "indigo"},
		{ID: "eq-3", Name: "Furadeira de Coluna", Color: "emerald"},
	}
}

func New(items []model.Equipment) *Catalog {
	byID := make(map[string]model.Equipment, len(items))
	for _, eq := range items {
		byID[eq.ID] = eq
	}
	return &Catalog{
		items: items,
		byID:  byID,
	}
}

// List returns the full catalog in seed order. It never fails.
func (c *Catalog) List() []model.Equipment {
	out := make([]model.Equipment, len(c.items))
	copy(out, c.items)
	return out
}

// Exists reports whether id is a known equipment id.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ResolveName returns the display name for id, or UnknownEquipmentName
// when the id is not in the catalog.
func (c *Catalog) ResolveName(id string) string {
	if eq, ok := c.byID[id]; ok {
		return eq.Name
	}
	return UnknownEquipmentName
}
