package audit

import (
	"reflect"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name           string
		oldSnap        map[string]interface{}
		newSnap        map[string]interface{}
		wantOldChanged map[string]interface{}
		wantNewChanged map[string]interface{}
	}{
		{
			name:           "no changes",
			oldSnap:        map[string]interface{}{"serie": "SN-1", "estado": "activo"},
			newSnap:        map[string]interface{}{"serie": "SN-1", "estado": "activo"},
			wantOldChanged: map[string]interface{}{},
			wantNewChanged: map[string]interface{}{},
		},
		{
			name:           "value changed",
			oldSnap:        map[string]interface{}{"serie": "SN-1", "estado": "activo"},
			newSnap:        map[string]interface{}{"serie": "SN-1", "estado": "retirado"},
			wantOldChanged: map[string]interface{}{"estado": "activo"},
			wantNewChanged: map[string]interface{}{"estado": "retirado"},
		},
		{
			name:           "key added",
			oldSnap:        map[string]interface{}{"serie": "SN-1"},
			newSnap:        map[string]interface{}{"serie": "SN-1", "motivo_baja": "damaged"},
			wantOldChanged: map[string]interface{}{},
			wantNewChanged: map[string]interface{}{"motivo_baja": "damaged"},
		},
		{
			name:           "key removed",
			oldSnap:        map[string]interface{}{"serie": "SN-1", "assigned_to": "Ana Gomez"},
			newSnap:        map[string]interface{}{"serie": "SN-1"},
			wantOldChanged: map[string]interface{}{"assigned_to": "Ana Gomez"},
			wantNewChanged: map[string]interface{}{},
		},
		{
			name: "equal slice values",
			oldSnap: map[string]interface{}{
				"serie":           "SN-1",
				"documentos_baja": []string{"bajas/acta.pdf"},
			},
			newSnap: map[string]interface{}{
				"serie":           "SN-1",
				"documentos_baja": []string{"bajas/acta.pdf"},
			},
			wantOldChanged: map[string]interface{}{},
			wantNewChanged: map[string]interface{}{},
		},
		{
			name: "slice value changed",
			oldSnap: map[string]interface{}{
				"documentos_baja": []string{"bajas/acta.pdf"},
			},
			newSnap: map[string]interface{}{
				"documentos_baja": []string{"bajas/acta.pdf", "bajas/foto.jpg"},
			},
			wantOldChanged: map[string]interface{}{
				"documentos_baja": []string{"bajas/acta.pdf"},
			},
			wantNewChanged: map[string]interface{}{
				"documentos_baja": []string{"bajas/acta.pdf", "bajas/foto.jpg"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldChanged, newChanged := Diff(tt.oldSnap, tt.newSnap)
			if !reflect.DeepEqual(oldChanged, tt.wantOldChanged) {
				t.Errorf("oldChanged = %v, want %v", oldChanged, tt.wantOldChanged)
			}
			if !reflect.DeepEqual(newChanged, tt.wantNewChanged) {
				t.Errorf("newChanged = %v, want %v", newChanged, tt.wantNewChanged)
			}
		})
	}
}
