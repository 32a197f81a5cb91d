package service

import "fincatech.io/itam/ent"

// AssetSpecs is the resolved technical sheet of an asset: per-asset
// overrides where present, model defaults otherwise.
type AssetSpecs struct {
	Procesador      string `json:"procesador,omitempty"`
	RAM             int    `json:"ram,omitempty"`
	Almacenamiento  string `json:"almacenamiento,omitempty"`
	TarjetaGrafica  string `json:"tarjeta_grafica,omitempty"`
	Wifi            bool   `json:"wifi"`
	Ethernet        bool   `json:"ethernet"`
	PuertosEthernet string `json:"puertos_ethernet,omitempty"`
	PuertosSfp      string `json:"puertos_sfp,omitempty"`
	PuertoConsola   bool   `json:"puerto_consola"`
	PuertosPoe      string `json:"puertos_poe,omitempty"`
	Alimentacion    string `json:"alimentacion,omitempty"`
	Administrable   bool   `json:"administrable"`
	Tamano          string `json:"tamano,omitempty"`
	Color           string `json:"color,omitempty"`
	Conectores      string `json:"conectores,omitempty"`
	Cables          string `json:"cables,omitempty"`
}

// ResolveSpecs merges an asset's spec overrides with its model defaults.
// A nil override means "inherit from the model"; an explicit override
// wins even when it is the zero value (e.g. wifi disabled on one unit).
func ResolveSpecs(a *ent.Activo, m *ent.ModeloActivo) AssetSpecs {
	specs := AssetSpecs{}
	if m != nil {
		specs = AssetSpecs{
			Procesador:      m.Procesador,
			RAM:             m.RAM,
			Almacenamiento:  m.Almacenamiento,
			TarjetaGrafica:  m.TarjetaGrafica,
			Wifi:            m.Wifi,
			Ethernet:        m.Ethernet,
			PuertosEthernet: m.PuertosEthernet,
			PuertosSfp:      m.PuertosSfp,
			PuertoConsola:   m.PuertoConsola,
			PuertosPoe:      m.PuertosPoe,
			Alimentacion:    m.Alimentacion,
			Administrable:   m.Administrable,
			Tamano:          m.Tamano,
			Color:           m.Color,
			Conectores:      m.Conectores,
			Cables:          m.Cables,
		}
	}
	if a == nil {
		return specs
	}

	if a.Procesador != nil {
		specs.Procesador = *a.Procesador
	}
	if a.RAM != nil {
		specs.RAM = *a.RAM
	}
	if a.Almacenamiento != nil {
		specs.Almacenamiento = *a.Almacenamiento
	}
	if a.TarjetaGrafica != nil {
		specs.TarjetaGrafica = *a.TarjetaGrafica
	}
	if a.Wifi != nil {
		specs.Wifi = *a.Wifi
	}
	if a.Ethernet != nil {
		specs.Ethernet = *a.Ethernet
	}
	if a.PuertosEthernet != nil {
		specs.PuertosEthernet = *a.PuertosEthernet
	}
	if a.PuertosSfp != nil {
		specs.PuertosSfp = *a.PuertosSfp
	}
	if a.PuertoConsola != nil {
		specs.PuertoConsola = *a.PuertoConsola
	}
	if a.PuertosPoe != nil {
		specs.PuertosPoe = *a.PuertosPoe
	}
	if a.Alimentacion != nil {
		specs.Alimentacion = *a.Alimentacion
	}
	if a.Administrable != nil {
		specs.Administrable = *a.Administrable
	}
	if a.Tamano != nil {
		specs.Tamano = *a.Tamano
	}
	if a.Color != nil {
		specs.Color = *a.Color
	}
	if a.Conectores != nil {
		specs.Conectores = *a.Conectores
	}
	if a.Cables != nil {
		specs.Cables = *a.Cables
	}
	return specs
}
