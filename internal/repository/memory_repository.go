package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// MemoryRepository implements the Repository interface with in-memory
// maps. It backs tests and the "memory" storage mode, where bookkeeping
// state lives only for the lifetime of the process.
type MemoryRepository struct {
	mu         sync.RWMutex
	properties map[string]models.Property
	entries    map[string]models.LedgerEntry
	dailyLogs  map[string]models.DailyLog
	banks      map[string]models.Bank
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		properties: make(map[string]models.Property),
		entries:    make(map[string]models.LedgerEntry),
		dailyLogs:  make(map[string]models.DailyLog),
		banks:      make(map[string]models.Bank),
	}
}

// Property repository methods
func (r *MemoryRepository) CreateProperty(ctx context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	r.properties[property.ID] = *property
	return nil
}

func (r *MemoryRepository) GetProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	property, ok := r.properties[propertyID]
	if !ok {
		return nil, nil
	}
	return &property, nil
}

func (r *MemoryRepository) ListProperties(ctx context.Context) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	properties := make([]models.Property, 0, len(r.properties))
	for _, p := range r.properties {
		properties = append(properties, p)
	}
	sort.Slice(properties, func(i, j int) bool {
		return properties[i].CreatedAt.Before(properties[j].CreatedAt)
	})
	return properties, nil
}

// Ledger entry repository methods
func (r *MemoryRepository) CreateEntry(ctx context.Context, entry *models.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Version == 0 {
		entry.Version = 1
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	r.entries[entry.ID] = *entry
	return nil
}

func (r *MemoryRepository) GetEntry(ctx context.Context, propertyID, entryID string) (*models.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[entryID]
	if !ok || entry.PropertyID != propertyID {
		return nil, nil
	}
	return &entry, nil
}

func (r *MemoryRepository) UpdateEntry(ctx context.Context, entry *models.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.UpdatedAt = time.Now().UTC()
	r.entries[entry.ID] = *entry
	return nil
}

func (r *MemoryRepository) DeleteEntry(ctx context.Context, propertyID, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.entries[entryID]; ok && entry.PropertyID == propertyID {
		delete(r.entries, entryID)
	}
	return nil
}

func (r *MemoryRepository) ListEntriesByProperty(ctx context.Context, propertyID string) ([]models.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []models.LedgerEntry
	for _, e := range r.entries {
		if e.PropertyID == propertyID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

// Daily log repository methods
func (r *MemoryRepository) CreateDailyLog(ctx context.Context, log *models.DailyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Version == 0 {
		log.Version = 1
	}
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	r.dailyLogs[log.ID] = cloneDailyLog(*log)
	return nil
}

func (r *MemoryRepository) GetDailyLog(ctx context.Context, logID string) (*models.DailyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.dailyLogs[logID]
	if !ok {
		return nil, nil
	}
	clone := cloneDailyLog(log)
	return &clone, nil
}

func (r *MemoryRepository) GetDailyLogByDate(ctx context.Context, date time.Time) (*models.DailyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, log := range r.dailyLogs {
		if sameDay(log.Date, date) {
			clone := cloneDailyLog(log)
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) UpdateDailyLog(ctx context.Context, log *models.DailyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.UpdatedAt = time.Now().UTC()
	for i := range log.Expenses {
		if log.Expenses[i].ID == "" {
			log.Expenses[i].ID = uuid.New().String()
		}
	}
	r.dailyLogs[log.ID] = cloneDailyLog(*log)
	return nil
}

func (r *MemoryRepository) ListDailyLogs(ctx context.Context) ([]models.DailyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := make([]models.DailyLog, 0, len(r.dailyLogs))
	for _, log := range r.dailyLogs {
		logs = append(logs, cloneDailyLog(log))
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})
	return logs, nil
}

// Bank registry repository methods
func (r *MemoryRepository) CreateBank(ctx context.Context, bank *models.Bank) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bank.ID == "" {
		bank.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	bank.CreatedAt = now
	bank.UpdatedAt = now

	r.banks[bank.ID] = *bank
	return nil
}

func (r *MemoryRepository) GetBank(ctx context.Context, bankID string) (*models.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bank, ok := r.banks[bankID]
	if !ok {
		return nil, nil
	}
	return &bank, nil
}

func (r *MemoryRepository) GetBankByName(ctx context.Context, name string) (*models.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, bank := range r.banks {
		if bank.Name == name {
			b := bank
			return &b, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) UpdateBank(ctx context.Context, bank *models.Bank) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bank.UpdatedAt = time.Now().UTC()
	r.banks[bank.ID] = *bank
	return nil
}

func (r *MemoryRepository) DeleteBank(ctx context.Context, bankID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.banks, bankID)
	return nil
}

func (r *MemoryRepository) ListBanks(ctx context.Context) ([]models.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	banks := make([]models.Bank, 0, len(r.banks))
	for _, b := range r.banks {
		banks = append(banks, b)
	}
	sort.Slice(banks, func(i, j int) bool {
		return banks[i].Name < banks[j].Name
	})
	return banks, nil
}

// cloneDailyLog deep-copies the aggregate so callers never share maps
// or expense slices with the store.
func cloneDailyLog(log models.DailyLog) models.DailyLog {
	out := log
	out.Expenses = append([]models.DailyExpense(nil), log.Expenses...)
	out.OpeningBalances = cloneSheet(log.OpeningBalances)
	out.ClosingBalances = cloneSheet(log.ClosingBalances)
	if log.BankUsage != nil {
		out.BankUsage = make(map[string]decimal.Decimal, len(log.BankUsage))
		for k, v := range log.BankUsage {
			out.BankUsage[k] = v
		}
	}
	return out
}

func cloneSheet(s models.BalanceSheet) models.BalanceSheet {
	out := models.BalanceSheet{Cash: s.Cash}
	if s.Banks != nil {
		out.Banks = make(map[string]decimal.Decimal, len(s.Banks))
		for k, v := range s.Banks {
			out.Banks[k] = v
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
