package service

import (
	"context"
	"fmt"
	"time"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/activo"
	apperrors "fincatech.io/itam/internal/pkg/errors"
)

// resolveAssetTx looks up an asset inside a transaction by a string
// that may be either its hostname or its serie.
func resolveAssetTx(ctx context.Context, tx *ent.Tx, identifier string) (*ent.Activo, error) {
	a, err := tx.Activo.Query().
		Where(activo.Or(
			activo.HostnameEQ(identifier),
			activo.SerieEQ(identifier),
		)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrAssetNotFoundf(identifier)
		}
		return nil, fmt.Errorf("resolve asset %q: %w", identifier, err)
	}
	return a, nil
}

// dueAssets returns active assets whose cached next-maintenance date is
// on or before the cutoff.
func dueAssets(ctx context.Context, client *ent.Client, cutoff time.Time) ([]*ent.Activo, error) {
	assets, err := client.Activo.Query().
		Where(
			activo.EstadoEQ(activo.EstadoActivo),
			activo.ProximoMantenimientoNotNil(),
			activo.ProximoMantenimientoLTE(cutoff),
		).
		Order(ent.Asc(activo.FieldProximoMantenimiento)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due assets: %w", err)
	}
	return assets, nil
}

// warrantyExpiring returns active assets whose warranty ends inside
// the window [now, cutoff].
func warrantyExpiring(ctx context.Context, client *ent.Client, now, cutoff time.Time) ([]*ent.Activo, error) {
	assets, err := client.Activo.Query().
		Where(
			activo.EstadoEQ(activo.EstadoActivo),
			activo.FechaFinGarantiaNotNil(),
			activo.FechaFinGarantiaGTE(now),
			activo.FechaFinGarantiaLTE(cutoff),
		).
		Order(ent.Asc(activo.FieldFechaFinGarantia)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query expiring warranties: %w", err)
	}
	return assets, nil
}
