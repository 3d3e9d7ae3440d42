package postgres

import (
	"context"

	"wastetrack/internal/domain/repository"
	"wastetrack/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories builds repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewTruckStatusRepository() repository.TruckStatusRepository {
	return NewTruckStatusRepository(f.tx)
}

func (f txRepositories) NewCollectionStatusRepository() repository.CollectionStatusRepository {
	return NewCollectionStatusRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. The transaction commits when fn returns nil and
// rolls back on an error or a panic.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})

	return errors.WithStack(err)
}
