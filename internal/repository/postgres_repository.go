package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// PostgresRepository implements the Repository interface using PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// GetDB returns the underlying database connection
func (r *PostgresRepository) GetDB() *sqlx.DB {
	return r.db
}

// Property repository methods
func (r *PostgresRepository) CreateProperty(ctx context.Context, property *models.Property) error {
	query := `
		INSERT INTO properties (id, name, type, purchase_date, tenant_name,
			monthly_rent_amount, rent_due_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if property.ID == "" {
		property.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		property.ID, property.Name, property.Type, property.PurchaseDate,
		property.TenantName, property.MonthlyRentAmount, property.RentDueDay,
		property.CreatedAt, property.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	query := `SELECT * FROM properties WHERE id = $1`

	var property models.Property
	err := r.db.GetContext(ctx, &property, query, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &property, nil
}

func (r *PostgresRepository) ListProperties(ctx context.Context) ([]models.Property, error) {
	query := `SELECT * FROM properties ORDER BY created_at ASC`

	var properties []models.Property
	err := r.db.SelectContext(ctx, &properties, query)
	if err != nil {
		return nil, err
	}

	return properties, nil
}

// Ledger entry repository methods
func (r *PostgresRepository) CreateEntry(ctx context.Context, entry *models.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, property_id, date, description, type, amount,
			category, payment_method, counterparty, linked_document_id, linked_image_id,
			attachment, notes, is_opening_balance, is_locked, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Version == 0 {
		entry.Version = 1
	}

	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.PropertyID, entry.Date, entry.Description, entry.Type, entry.Amount,
		entry.Category, entry.PaymentMethod, entry.Counterparty, entry.LinkedDocumentID,
		entry.LinkedImageID, entry.Attachment, entry.Notes, entry.IsOpeningBalance,
		entry.IsLocked, entry.Version, entry.CreatedAt, entry.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetEntry(ctx context.Context, propertyID, entryID string) (*models.LedgerEntry, error) {
	query := `SELECT * FROM ledger_entries WHERE id = $1 AND property_id = $2`

	var entry models.LedgerEntry
	err := r.db.GetContext(ctx, &entry, query, entryID, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

func (r *PostgresRepository) UpdateEntry(ctx context.Context, entry *models.LedgerEntry) error {
	query := `
		UPDATE ledger_entries
		SET date = $3, description = $4, type = $5, amount = $6, category = $7,
			payment_method = $8, counterparty = $9, linked_document_id = $10,
			linked_image_id = $11, attachment = $12, notes = $13,
			is_opening_balance = $14, is_locked = $15, version = $16, updated_at = $17
		WHERE id = $1 AND property_id = $2
	`

	entry.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.PropertyID, entry.Date, entry.Description, entry.Type,
		entry.Amount, entry.Category, entry.PaymentMethod, entry.Counterparty,
		entry.LinkedDocumentID, entry.LinkedImageID, entry.Attachment, entry.Notes,
		entry.IsOpeningBalance, entry.IsLocked, entry.Version, entry.UpdatedAt)

	return err
}

func (r *PostgresRepository) DeleteEntry(ctx context.Context, propertyID, entryID string) error {
	query := `DELETE FROM ledger_entries WHERE id = $1 AND property_id = $2`
	_, err := r.db.ExecContext(ctx, query, entryID, propertyID)
	return err
}

func (r *PostgresRepository) ListEntriesByProperty(ctx context.Context, propertyID string) ([]models.LedgerEntry, error) {
	query := `SELECT * FROM ledger_entries WHERE property_id = $1 ORDER BY date ASC, created_at ASC`

	var entries []models.LedgerEntry
	err := r.db.SelectContext(ctx, &entries, query, propertyID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Daily log repository methods.
//
// A daily log is stored across three tables: the log row itself, one
// row per bank carrying opening/closing/usage figures, and one row per
// captured expense. Reads reassemble the aggregate.
type dailyLogRow struct {
	ID            string          `db:"id"`
	Date          time.Time       `db:"date"`
	OpeningCash   decimal.Decimal `db:"opening_cash"`
	ClosingCash   decimal.Decimal `db:"closing_cash"`
	TotalExpenses decimal.Decimal `db:"total_expenses"`
	IsLocked      bool            `db:"is_locked"`
	Version       int64           `db:"version"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type dailyLogBankRow struct {
	LogID         string          `db:"log_id"`
	BankName      string          `db:"bank_name"`
	OpeningAmount decimal.Decimal `db:"opening_amount"`
	ClosingAmount decimal.Decimal `db:"closing_amount"`
	UsageAmount   decimal.Decimal `db:"usage_amount"`
}

func (r *PostgresRepository) CreateDailyLog(ctx context.Context, log *models.DailyLog) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Version == 0 {
		log.Version = 1
	}

	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	query := `
		INSERT INTO daily_logs (id, date, opening_cash, closing_cash, total_expenses,
			is_locked, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.ExecContext(ctx, query,
		log.ID, log.Date, log.OpeningBalances.Cash, log.ClosingBalances.Cash,
		log.TotalDailyExpenses, log.IsLocked, log.Version, log.CreatedAt, log.UpdatedAt)
	if err != nil {
		return err
	}

	err = r.insertDailyLogChildren(ctx, tx, log)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) UpdateDailyLog(ctx context.Context, log *models.DailyLog) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	log.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE daily_logs
		SET opening_cash = $2, closing_cash = $3, total_expenses = $4,
			is_locked = $5, version = $6, updated_at = $7
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, query,
		log.ID, log.OpeningBalances.Cash, log.ClosingBalances.Cash,
		log.TotalDailyExpenses, log.IsLocked, log.Version, log.UpdatedAt)
	if err != nil {
		return err
	}

	// child rows are replaced wholesale; the aggregate is small
	_, err = tx.ExecContext(ctx, `DELETE FROM daily_log_banks WHERE log_id = $1`, log.ID)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM daily_expenses WHERE log_id = $1`, log.ID)
	if err != nil {
		return err
	}

	err = r.insertDailyLogChildren(ctx, tx, log)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) insertDailyLogChildren(ctx context.Context, tx *sqlx.Tx, log *models.DailyLog) error {
	bankQuery := `
		INSERT INTO daily_log_banks (log_id, bank_name, opening_amount, closing_amount, usage_amount)
		VALUES ($1, $2, $3, $4, $5)
	`
	for name, opening := range log.OpeningBalances.Banks {
		closing := opening
		if log.ClosingBalances.Banks != nil {
			if c, ok := log.ClosingBalances.Banks[name]; ok {
				closing = c
			}
		}
		usage := decimal.Zero
		if log.BankUsage != nil {
			if u, ok := log.BankUsage[name]; ok {
				usage = u
			}
		}
		if _, err := tx.ExecContext(ctx, bankQuery, log.ID, name, opening, closing, usage); err != nil {
			return err
		}
	}

	expenseQuery := `
		INSERT INTO daily_expenses (id, log_id, property_id, description, amount,
			payment_method, bank_name, cash_amount, bank_amount, is_pending, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for i, x := range log.Expenses {
		if x.ID == "" {
			x.ID = uuid.New().String()
			log.Expenses[i].ID = x.ID
		}
		if _, err := tx.ExecContext(ctx, expenseQuery,
			x.ID, log.ID, x.PropertyID, x.Description, x.Amount,
			x.PaymentMethod, x.BankName, x.CashAmount, x.BankAmount, x.IsPending, i); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) GetDailyLog(ctx context.Context, logID string) (*models.DailyLog, error) {
	return r.getDailyLogWhere(ctx, `SELECT * FROM daily_logs WHERE id = $1`, logID)
}

func (r *PostgresRepository) GetDailyLogByDate(ctx context.Context, date time.Time) (*models.DailyLog, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return r.getDailyLogWhere(ctx, `SELECT * FROM daily_logs WHERE date = $1`, day)
}

func (r *PostgresRepository) getDailyLogWhere(ctx context.Context, query string, arg interface{}) (*models.DailyLog, error) {
	var row dailyLogRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	log, err := r.assembleDailyLog(ctx, row)
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (r *PostgresRepository) assembleDailyLog(ctx context.Context, row dailyLogRow) (*models.DailyLog, error) {
	log := &models.DailyLog{
		ID:                 row.ID,
		Date:               row.Date,
		TotalDailyExpenses: row.TotalExpenses,
		IsLocked:           row.IsLocked,
		Version:            row.Version,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		OpeningBalances:    models.BalanceSheet{Cash: row.OpeningCash, Banks: make(map[string]decimal.Decimal)},
		ClosingBalances:    models.BalanceSheet{Cash: row.ClosingCash, Banks: make(map[string]decimal.Decimal)},
		BankUsage:          make(map[string]decimal.Decimal),
	}

	var banks []dailyLogBankRow
	err := r.db.SelectContext(ctx, &banks,
		`SELECT * FROM daily_log_banks WHERE log_id = $1 ORDER BY bank_name ASC`, row.ID)
	if err != nil {
		return nil, err
	}
	for _, b := range banks {
		log.OpeningBalances.Banks[b.BankName] = b.OpeningAmount
		log.ClosingBalances.Banks[b.BankName] = b.ClosingAmount
		if !b.UsageAmount.IsZero() {
			log.BankUsage[b.BankName] = b.UsageAmount
		}
	}

	var expenses []models.DailyExpense
	err = r.db.SelectContext(ctx, &expenses,
		`SELECT id, log_id, property_id, description, amount, payment_method,
			bank_name, cash_amount, bank_amount, is_pending
		FROM daily_expenses WHERE log_id = $1 ORDER BY position ASC`, row.ID)
	if err != nil {
		return nil, err
	}
	log.Expenses = expenses

	return log, nil
}

func (r *PostgresRepository) ListDailyLogs(ctx context.Context) ([]models.DailyLog, error) {
	var rows []dailyLogRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM daily_logs ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}

	logs := make([]models.DailyLog, 0, len(rows))
	for _, row := range rows {
		log, err := r.assembleDailyLog(ctx, row)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, nil
}

// Bank registry repository methods
func (r *PostgresRepository) CreateBank(ctx context.Context, bank *models.Bank) error {
	query := `
		INSERT INTO banks (id, name, account_number, branch_name, account_type,
			balance, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if bank.ID == "" {
		bank.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	bank.CreatedAt = now
	bank.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		bank.ID, bank.Name, bank.AccountNumber, bank.BranchName, bank.AccountType,
		bank.Balance, bank.Notes, bank.CreatedAt, bank.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetBank(ctx context.Context, bankID string) (*models.Bank, error) {
	query := `SELECT * FROM banks WHERE id = $1`

	var bank models.Bank
	err := r.db.GetContext(ctx, &bank, query, bankID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &bank, nil
}

func (r *PostgresRepository) GetBankByName(ctx context.Context, name string) (*models.Bank, error) {
	query := `SELECT * FROM banks WHERE name = $1`

	var bank models.Bank
	err := r.db.GetContext(ctx, &bank, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &bank, nil
}

func (r *PostgresRepository) UpdateBank(ctx context.Context, bank *models.Bank) error {
	query := `
		UPDATE banks
		SET name = $2, account_number = $3, branch_name = $4, account_type = $5,
			balance = $6, notes = $7, updated_at = $8
		WHERE id = $1
	`

	bank.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		bank.ID, bank.Name, bank.AccountNumber, bank.BranchName, bank.AccountType,
		bank.Balance, bank.Notes, bank.UpdatedAt)

	return err
}

func (r *PostgresRepository) DeleteBank(ctx context.Context, bankID string) error {
	query := `DELETE FROM banks WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, bankID)
	return err
}

func (r *PostgresRepository) ListBanks(ctx context.Context) ([]models.Bank, error) {
	query := `SELECT * FROM banks ORDER BY name ASC`

	var banks []models.Bank
	err := r.db.SelectContext(ctx, &banks, query)
	if err != nil {
		return nil, err
	}

	return banks, nil
}
