package repository

import (
	"context"
	"time"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// Repository interface defines the storage operations the service
// depends on. Implementations return (nil, nil) for lookups that find
// nothing; translating that into a not-found error is the service's job.
type Repository interface {
	// Property operations
	CreateProperty(ctx context.Context, property *models.Property) error
	GetProperty(ctx context.Context, propertyID string) (*models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)

	// Ledger entry operations
	CreateEntry(ctx context.Context, entry *models.LedgerEntry) error
	GetEntry(ctx context.Context, propertyID, entryID string) (*models.LedgerEntry, error)
	UpdateEntry(ctx context.Context, entry *models.LedgerEntry) error
	DeleteEntry(ctx context.Context, propertyID, entryID string) error
	ListEntriesByProperty(ctx context.Context, propertyID string) ([]models.LedgerEntry, error)

	// Daily log operations
	CreateDailyLog(ctx context.Context, log *models.DailyLog) error
	GetDailyLog(ctx context.Context, logID string) (*models.DailyLog, error)
	GetDailyLogByDate(ctx context.Context, date time.Time) (*models.DailyLog, error)
	UpdateDailyLog(ctx context.Context, log *models.DailyLog) error
	ListDailyLogs(ctx context.Context) ([]models.DailyLog, error)

	// Bank registry operations
	CreateBank(ctx context.Context, bank *models.Bank) error
	GetBank(ctx context.Context, bankID string) (*models.Bank, error)
	GetBankByName(ctx context.Context, name string) (*models.Bank, error)
	UpdateBank(ctx context.Context, bank *models.Bank) error
	DeleteBank(ctx context.Context, bankID string) error
	ListBanks(ctx context.Context) ([]models.Bank, error)
}
