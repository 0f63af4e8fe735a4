package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const addressColumns = `address_id, user_id, address_line1, city, province, postal_code, is_default,
	recipient_name, phone_number, address_label, sub_district`

type AddressRepository struct {
	pool *pgxpool.Pool
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

// List returns every address. Addresses have no visibility flag.
func (r *AddressRepository) List(ctx context.Context) ([]model.Address, error) {
	items, err := collectAll[model.Address](r.pool.Query(ctx, `
		SELECT `+addressColumns+`
		FROM addresses`))
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return items, nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	item, err := collectOne[model.Address](r.pool.Query(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE address_id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get address %d: %w", id, err)
	}
	return item, nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	items, err := collectAll[model.Address](r.pool.Query(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE user_id = $1`, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses of user %d: %w", userID, err)
	}
	return items, nil
}

// Exists reports whether the user already has an address at the same
// location. A NULL sub_district matches a NULL sub_district.
func (r *AddressRepository) Exists(ctx context.Context, a *model.Address) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM addresses
			WHERE user_id = $1
			  AND address_line1 = $2
			  AND sub_district IS NOT DISTINCT FROM $3
			  AND city = $4
			  AND province = $5
			  AND postal_code = $6
		)`,
		a.UserID, a.AddressLine1, a.SubDistrict, a.City, a.Province, a.PostalCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check address: %w", err)
	}
	return exists, nil
}

// clearDefaults unsets is_default for every address of userID except
// exceptID (0 excludes nothing).
func clearDefaults(ctx context.Context, tx pgx.Tx, userID, exceptID int64) error {
	_, err := tx.Exec(ctx, `
		UPDATE addresses
		SET is_default = FALSE
		WHERE user_id = $1 AND address_id <> $2 AND is_default = TRUE`, userID, exceptID)
	if err != nil {
		return fmt.Errorf("failed to clear default addresses of user %d: %w", userID, err)
	}
	return nil
}

// Create inserts the address. When it is the default, the user's other
// defaults are cleared in the same transaction.
func (r *AddressRepository) Create(ctx context.Context, a *model.Address) (*model.Address, error) {
	var created *model.Address

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if a.IsDefault {
			if err := clearDefaults(ctx, tx, a.UserID, 0); err != nil {
				return err
			}
		}

		item, err := collectOne[model.Address](tx.Query(ctx, `
			INSERT INTO addresses (user_id, address_line1, city, province, postal_code, is_default,
				recipient_name, phone_number, address_label, sub_district)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING `+addressColumns,
			a.UserID, a.AddressLine1, a.City, a.Province, a.PostalCode, a.IsDefault,
			a.RecipientName, a.PhoneNumber, a.AddressLabel, a.SubDistrict))
		if err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}

		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces the address with a.ID. When it becomes the default, the
// user's other defaults are cleared in the same transaction.
func (r *AddressRepository) Update(ctx context.Context, a *model.Address) (*model.Address, error) {
	var updated *model.Address

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if a.IsDefault {
			if err := clearDefaults(ctx, tx, a.UserID, a.ID); err != nil {
				return err
			}
		}

		item, err := collectOne[model.Address](tx.Query(ctx, `
			UPDATE addresses
			SET user_id = $2, address_line1 = $3, city = $4, province = $5, postal_code = $6,
			    is_default = $7, recipient_name = $8, phone_number = $9, address_label = $10,
			    sub_district = $11
			WHERE address_id = $1
			RETURNING `+addressColumns,
			a.ID, a.UserID, a.AddressLine1, a.City, a.Province, a.PostalCode,
			a.IsDefault, a.RecipientName, a.PhoneNumber, a.AddressLabel, a.SubDistrict))
		if err != nil {
			return fmt.Errorf("failed to update address %d: %w", a.ID, err)
		}

		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM addresses WHERE address_id = $1 RETURNING address_id`, id).Scan(&deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to delete address %d: %w", id, err)
	}
	return deleted, nil
}
