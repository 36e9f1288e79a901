package postgres

import (
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/ledgerrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/platformrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use and seeds the
// order id counter.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&ledgerrepo.OrderDTO{},
		&ledgerrepo.SequenceDTO{},
		&platformrepo.PlatformDTO{},
		&deliveryrepo.RecordDTO{},
		&outboxrepo.MessageDTO{},
	)
	if err != nil {
		return err
	}

	return ledgerrepo.SeedSequences(db)
}
