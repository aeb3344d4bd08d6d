package catalog

import (
	"testing"

	"oficinareserva/pkg/model"
)

func TestListStableOrder(t *testing.T) {
	c := New(DefaultEquipment())

	first := c.List()
	second := c.List()

	if len(first) != 3 {
		t.Fatalf("expected 3 equipment items, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("List() order changed between calls at index %d", i)
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := New(DefaultEquipment())

	items := c.List()
	items[0].Name = "mutated"

	if c.ResolveName(items[0].ID) == "mutated" {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}

func TestResolveName(t *testing.T) {
	c := New([]model.Equipment{
		{ID: "eq-9", Name: "Serra de Bancada", Color: "red"},
	})

	if got := c.ResolveName("eq-9"); got != "Serra de Bancada" {
		t.Errorf("ResolveName(eq-9) = %q", got)
	}
	if got := c.ResolveName("missing"); got != UnknownEquipmentName {
		t.Errorf("ResolveName(missing) = %q, want %q", got, UnknownEquipmentName)
	}
}

func TestExists(t *testing.T) {
	c := New(DefaultEquipment())

	if !c.Exists("eq-1") {
		t.Error("expected eq-1 to exist")
	}
	if c.Exists("eq-99") {
		t.Error("expected eq-99 to not exist")
	}
}
