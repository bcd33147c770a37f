package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/registra/internal/app/models"
)

const accountSelect = `
	SELECT id, username, password, email, role, student_id, instructor_id
	FROM user_accounts`

// AccountRepository persists user accounts.
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func scanAccount(row pgx.Row) (*models.UserAccount, error) {
	var account models.UserAccount
	err := row.Scan(
		&account.ID, &account.Username, &account.Password, &account.Email,
		&account.Role, &account.StudentID, &account.InstructorID,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAll returns every account.
func (r *AccountRepository) GetAll(ctx context.Context) ([]*models.UserAccount, error) {
	rows, err := r.db.Query(ctx, accountSelect+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.UserAccount
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// GetByID returns the account with the given ID, or nil when absent.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.UserAccount, error) {
	row := r.db.QueryRow(ctx, accountSelect+` WHERE id = $1`, id)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// GetByUsername returns the account matching the username
// case-insensitively, or nil when absent.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	row := r.db.QueryRow(ctx, accountSelect+` WHERE LOWER(username) = LOWER($1)`, username)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by username: %w", err)
	}

	return account, nil
}

// GetByStudentID returns the account linked to a student, or nil when
// none exists.
func (r *AccountRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.UserAccount, error) {
	row := r.db.QueryRow(ctx, accountSelect+` WHERE student_id = $1`, studentID)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by student: %w", err)
	}

	return account, nil
}

// Add inserts an account and returns it with its generated ID. The unique
// lower(username) index surfaces duplicates as a unique violation.
func (r *AccountRepository) Add(ctx context.Context, account *models.UserAccount) (*models.UserAccount, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO user_accounts (username, password, email, role, student_id, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		account.Username, account.Password, account.Email, account.Role,
		account.StudentID, account.InstructorID,
	).Scan(&account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return account, nil
}

// Update rewrites an account's mutable fields.
func (r *AccountRepository) Update(ctx context.Context, account *models.UserAccount) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE user_accounts
		SET password = $1, email = $2, role = $3, student_id = $4, instructor_id = $5
		WHERE id = $6`,
		account.Password, account.Email, account.Role,
		account.StudentID, account.InstructorID, account.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found", account.ID)
	}

	return nil
}

// Delete removes an account. Missing rows are ignored.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
