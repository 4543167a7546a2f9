package bank

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/minibank-dev/minibank/internal/validate"
)

// Manager owns the account registry and the bank-wide deposit pool.
// A single mutex guards both so that loan approval's pool check and the
// following mutation happen atomically.
type Manager struct {
	mu       sync.Mutex
	accounts map[string]*Account
	txns     transactions
	loans    loans
	logger   *zap.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for operation tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Opening describes an account to register with Seed.
type Opening struct {
	Holder         string
	InitialDeposit decimal.Decimal
}

// NewManager creates an empty Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		accounts: make(map[string]*Account),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddAccount registers holder with an initial deposit. Duplicate holders are
// rejected before the amount is checked.
func (m *Manager) AddAccount(holder string, initialDeposit decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[holder]; ok {
		return m.reject("add account", holder, initialDeposit,
			fmt.Errorf("%w: %s", ErrAccountAlreadyExists, holder))
	}
	if err := validate.CheckPositive(initialDeposit); err != nil {
		return m.reject("add account", holder, initialDeposit, fmt.Errorf("initial deposit: %w", err))
	}

	m.accounts[holder] = newAccount(holder, initialDeposit)
	m.logger.Debug("account opened", zap.String("holder", holder), zap.Stringer("initial_deposit", initialDeposit))
	return nil
}

// Seed registers each opening in order and stops at the first failure.
func (m *Manager) Seed(openings []Opening) error {
	for i, o := range openings {
		if err := m.AddAccount(o.Holder, o.InitialDeposit); err != nil {
			return fmt.Errorf("seed account %d (%s): %w", i, o.Holder, err)
		}
	}
	return nil
}

// Deposit adds amount to holder's balance.
func (m *Manager) Deposit(holder string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, err := m.lookup(holder)
	if err != nil {
		return m.reject("deposit", holder, amount, err)
	}
	if err := m.txns.deposit(acct, amount); err != nil {
		return m.reject("deposit", holder, amount, err)
	}
	m.logger.Debug("deposit", zap.String("holder", holder), zap.Stringer("amount", amount))
	return nil
}

// Withdraw removes amount from holder's balance if it is covered.
func (m *Manager) Withdraw(holder string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, err := m.lookup(holder)
	if err != nil {
		return m.reject("withdraw", holder, amount, err)
	}
	if err := m.txns.withdraw(acct, amount); err != nil {
		return m.reject("withdraw", holder, amount, err)
	}
	m.logger.Debug("withdraw", zap.String("holder", holder), zap.Stringer("amount", amount))
	return nil
}

// ApproveLoan issues a loan to holder drawn from the bank-wide pool.
// The amount must not exceed the pool at the time of approval; the pool is
// checked before the amount itself.
func (m *Manager) ApproveLoan(holder string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, err := m.lookup(holder)
	if err != nil {
		return m.reject("approve loan", holder, amount, err)
	}
	pool := m.pool()
	if amount.GreaterThan(pool) {
		return m.reject("approve loan", holder, amount,
			fmt.Errorf("approve loan: %w: amount %s exceeds total deposits %s", ErrInsufficientFunds, amount, pool))
	}
	if err := m.loans.approve(acct, amount); err != nil {
		return m.reject("approve loan", holder, amount, err)
	}
	m.logger.Debug("loan approved", zap.String("holder", holder), zap.Stringer("amount", amount))
	return nil
}

// RepayLoan reduces holder's loan by amount, returning it to the pool.
func (m *Manager) RepayLoan(holder string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, err := m.lookup(holder)
	if err != nil {
		return m.reject("repay loan", holder, amount, err)
	}
	if err := validate.CheckPositive(amount); err != nil {
		return m.reject("repay loan", holder, amount, fmt.Errorf("repay loan: %w", err))
	}
	if err := m.loans.repay(acct, amount); err != nil {
		return m.reject("repay loan", holder, amount, err)
	}
	m.logger.Debug("loan repaid", zap.String("holder", holder), zap.Stringer("amount", amount))
	return nil
}

// Balance returns holder's deposit balance.
func (m *Manager) Balance(holder string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, err := m.lookup(holder)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Balance(), nil
}

// Loan returns holder's outstanding loan.
func (m *Manager) Loan(holder string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, err := m.lookup(holder)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Loan(), nil
}

// TotalDeposits returns the bank-wide pool available for lending.
func (m *Manager) TotalDeposits() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pool()
}

// Accounts returns snapshots of all accounts sorted by holder.
func (m *Manager) Accounts() []AccountSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]AccountSnapshot, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Holder < out[j].Holder })
	return out
}

func (m *Manager) lookup(holder string) (*Account, error) {
	acct, ok := m.accounts[holder]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, holder)
	}
	return acct, nil
}

// pool is derived from the registry rather than tracked separately:
// every deposit adds to it, every withdrawal and outstanding loan takes from it.
// Callers must hold m.mu.
func (m *Manager) pool() decimal.Decimal {
	total := decimal.Zero
	for _, a := range m.accounts {
		total = total.Add(a.balance).Sub(a.loan)
	}
	return total
}

func (m *Manager) reject(op, holder string, amount decimal.Decimal, err error) error {
	m.logger.Debug("operation rejected",
		zap.String("op", op),
		zap.String("holder", holder),
		zap.Stringer("amount", amount),
		zap.Error(err))
	return err
}
