// Package testutil provides in-memory repository implementations for service tests.
package testutil

import (
	"time"

	"github.com/spendwise/spendwise/internal/domain"
)

// MockUserRepository is an in-memory implementation of domain.UserRepository
type MockUserRepository struct {
	byID       map[int64]*domain.User
	byUsername map[string]*domain.User
	nextID     int64
}

// NewMockUserRepository creates a new mock user repository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		byID:       make(map[int64]*domain.User),
		byUsername: make(map[string]*domain.User),
		nextID:     1,
	}
}

func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	if _, exists := m.byUsername[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	stored := *user
	stored.ID = m.nextID
	stored.CreatedAt = time.Now().UTC()
	m.nextID++
	m.byID[stored.ID] = &stored
	m.byUsername[stored.Username] = &stored
	return &stored, nil
}

func (m *MockUserRepository) GetByID(id int64) (*domain.User, error) {
	user, exists := m.byID[id]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByUsername(username string) (*domain.User, error) {
	user, exists := m.byUsername[username]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// MockExpenseRepository is an in-memory implementation of domain.ExpenseRepository
type MockExpenseRepository struct {
	expenses []*domain.Expense
	nextID   int64

	// CreateErr, when set, is returned by Create
	CreateErr error
}

// NewMockExpenseRepository creates a new mock expense repository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{nextID: 1}
}

func (m *MockExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	stored := *expense
	stored.ID = m.nextID
	stored.CreatedAt = time.Now().UTC()
	m.nextID++
	m.expenses = append(m.expenses, &stored)
	return &stored, nil
}

func (m *MockExpenseRepository) GetAllByUser(userID int64) ([]*domain.Expense, error) {
	var result []*domain.Expense
	for _, e := range m.expenses {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

// MockBudgetRepository is an in-memory implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	budgets map[budgetKey]*domain.Budget
	nextID  int64
}

type budgetKey struct {
	userID   int64
	category domain.Category
}

// NewMockBudgetRepository creates a new mock budget repository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		budgets: make(map[budgetKey]*domain.Budget),
		nextID:  1,
	}
}

func (m *MockBudgetRepository) Upsert(budget *domain.Budget) (*domain.Budget, error) {
	key := budgetKey{userID: budget.UserID, category: budget.Category}
	if existing, exists := m.budgets[key]; exists {
		existing.Amount = budget.Amount
		return existing, nil
	}
	stored := *budget
	stored.ID = m.nextID
	m.nextID++
	m.budgets[key] = &stored
	return &stored, nil
}

func (m *MockBudgetRepository) GetByUserAndCategory(userID int64, category domain.Category) (*domain.Budget, error) {
	budget, exists := m.budgets[budgetKey{userID: userID, category: category}]
	if !exists {
		return nil, domain.ErrBudgetNotFound
	}
	return budget, nil
}

func (m *MockBudgetRepository) GetAllByUser(userID int64) ([]*domain.Budget, error) {
	var result []*domain.Budget
	for _, cat := range domain.Categories() {
		if b, exists := m.budgets[budgetKey{userID: userID, category: cat}]; exists {
			result = append(result, b)
		}
	}
	return result, nil
}

// Count returns the number of stored budgets
func (m *MockBudgetRepository) Count() int {
	return len(m.budgets)
}

// MockSessionRepository is an in-memory implementation of domain.SessionRepository
type MockSessionRepository struct {
	sessions map[string]*domain.Session
}

// NewMockSessionRepository creates a new mock session repository
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{sessions: make(map[string]*domain.Session)}
}

func (m *MockSessionRepository) Create(session *domain.Session) error {
	stored := *session
	stored.CreatedAt = time.Now().UTC()
	m.sessions[stored.Token] = &stored
	return nil
}

func (m *MockSessionRepository) GetByToken(token string) (*domain.Session, error) {
	session, exists := m.sessions[token]
	if !exists || session.Expired(time.Now().UTC()) {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionRepository) Delete(token string) error {
	delete(m.sessions, token)
	return nil
}

func (m *MockSessionRepository) DeleteExpired() error {
	now := time.Now().UTC()
	for token, session := range m.sessions {
		if session.Expired(now) {
			delete(m.sessions, token)
		}
	}
	return nil
}

// Count returns the number of stored sessions
func (m *MockSessionRepository) Count() int {
	return len(m.sessions)
}
