package main

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSeedFile_Parse(t *testing.T) {
	t.Parallel()

	raw := []byte(`
regions:
  - name: Norte
    fincas: [Finca Uno, Finca Dos]
  - name: Sur
departamentos:
  - name: TI
    areas: [Infraestructura, Soporte]
tipos_activo:
  - name: Laptop
    description: Equipos portatiles
  - name: Switch
marcas: [Dell, Cisco]
`)

	var sf seedFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(sf.Regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(sf.Regions))
	}
	if sf.Regions[0].Name != "Norte" || len(sf.Regions[0].Fincas) != 2 {
		t.Errorf("region[0] = %+v, want Norte with 2 fincas", sf.Regions[0])
	}
	if len(sf.Regions[1].Fincas) != 0 {
		t.Errorf("region[1].Fincas = %v, want empty", sf.Regions[1].Fincas)
	}
	if len(sf.Departamentos) != 1 || len(sf.Departamentos[0].Areas) != 2 {
		t.Errorf("departamentos = %+v, want TI with 2 areas", sf.Departamentos)
	}
	if len(sf.TiposActivo) != 2 || sf.TiposActivo[0].Description == "" {
		t.Errorf("tipos_activo = %+v", sf.TiposActivo)
	}
	if len(sf.Marcas) != 2 {
		t.Errorf("marcas = %v, want 2", sf.Marcas)
	}
}

func TestNewID_Unique(t *testing.T) {
	t.Parallel()

	a, b := newID(), newID()
	if a == "" || a == b {
		t.Fatalf("newID() returned %q and %q, want distinct non-empty ids", a, b)
	}
}
