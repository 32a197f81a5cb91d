package service

import (
	"testing"

	"fincatech.io/itam/ent"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestResolveSpecs_ModelDefaults(t *testing.T) {
	m := &ent.ModeloActivo{
		Procesador:     "Intel i5-1135G7",
		RAM:            16,
		Almacenamiento: "512GB NVMe",
		Wifi:           true,
		Ethernet:       true,
	}

	specs := ResolveSpecs(&ent.Activo{}, m)

	if specs.Procesador != "Intel i5-1135G7" {
		t.Errorf("Procesador = %q, want model default", specs.Procesador)
	}
	if specs.RAM != 16 {
		t.Errorf("RAM = %d, want 16", specs.RAM)
	}
	if !specs.Wifi {
		t.Error("Wifi should inherit true from model")
	}
}

func TestResolveSpecs_AssetOverridesWin(t *testing.T) {
	m := &ent.ModeloActivo{
		Procesador: "Intel i5-1135G7",
		RAM:        16,
		Wifi:       true,
	}
	a := &ent.Activo{
		RAM:        intPtr(32), // upgraded unit
		Procesador: strPtr("Intel i7-1185G7"),
	}

	specs := ResolveSpecs(a, m)

	if specs.RAM != 32 {
		t.Errorf("RAM = %d, want override 32", specs.RAM)
	}
	if specs.Procesador != "Intel i7-1185G7" {
		t.Errorf("Procesador = %q, want override", specs.Procesador)
	}
	if !specs.Wifi {
		t.Error("Wifi should still inherit from model")
	}
}

func TestResolveSpecs_ZeroValueOverrideWins(t *testing.T) {
	// An explicit false/0 override must beat the model default; nil is
	// the only value that means "inherit".
	m := &ent.ModeloActivo{
		Wifi: true,
		RAM:  16,
	}
	a := &ent.Activo{
		Wifi: boolPtr(false), // wifi card removed on this unit
	}

	specs := ResolveSpecs(a, m)

	if specs.Wifi {
		t.Error("Wifi = true, want explicit false override")
	}
	if specs.RAM != 16 {
		t.Errorf("RAM = %d, want inherited 16", specs.RAM)
	}
}

func TestResolveSpecs_NilModel(t *testing.T) {
	a := &ent.Activo{
		Procesador: strPtr("Apple M2"),
	}

	specs := ResolveSpecs(a, nil)

	if specs.Procesador != "Apple M2" {
		t.Errorf("Procesador = %q, want asset override with no model", specs.Procesador)
	}
	if specs.RAM != 0 {
		t.Errorf("RAM = %d, want zero with no model", specs.RAM)
	}
}
