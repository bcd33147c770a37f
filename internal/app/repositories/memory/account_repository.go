package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

type accountRepository struct {
	store *Store
}

func copyAccount(account *models.UserAccount) *models.UserAccount {
	out := *account
	return &out
}

func (r *accountRepository) GetAll(ctx context.Context) ([]*models.UserAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	accounts := make([]*models.UserAccount, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		accounts = append(accounts, copyAccount(account))
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*models.UserAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, nil
	}
	return copyAccount(account), nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, account := range r.store.accounts {
		if strings.EqualFold(account.Username, username) {
			return copyAccount(account), nil
		}
	}
	return nil, nil
}

func (r *accountRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.UserAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, account := range r.store.accounts {
		if account.StudentID != nil && *account.StudentID == studentID {
			return copyAccount(account), nil
		}
	}
	return nil, nil
}

// Add enforces case-insensitive username uniqueness, the same rule the
// SQL schema expresses with a unique index on lower(username).
func (r *accountRepository) Add(ctx context.Context, account *models.UserAccount) (*models.UserAccount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.accounts {
		if strings.EqualFold(existing.Username, account.Username) {
			return nil, fmt.Errorf("username %s: %w", account.Username, apperrors.ErrResourceAlreadyExists)
		}
	}

	account.ID = r.store.nextIDFor("accounts")
	stored := *account
	r.store.accounts[account.ID] = &stored
	return account, nil
}

func (r *accountRepository) Update(ctx context.Context, account *models.UserAccount) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[account.ID]; !ok {
		return fmt.Errorf("account %d not found", account.ID)
	}
	stored := *account
	r.store.accounts[account.ID] = &stored
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.accounts, id)
	return nil
}
