package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const bookingOverlapConstraint = "bookings_no_overlap"

// Migrate creates or updates the relational schema. It is safe to run on
// every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return fmt.Errorf("failed to enable btree_gist: %w", err)
	}
	if err := db.AutoMigrate(&User{}, &Car{}, &Booking{}); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	stmt := fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
		ALTER TABLE %[2]s ADD CONSTRAINT %[1]s
			EXCLUDE USING gist (
				car_id WITH =,
				tstzrange(start_date, end_date, '[]') WITH &&
			) WHERE (status IN ('PENDING', 'CONFIRMED'));
	END IF;
END
$$;`, bookingOverlapConstraint, BookingsTable)
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to add booking overlap constraint: %w", err)
	}
	return nil
}
