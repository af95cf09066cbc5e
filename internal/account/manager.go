// Package account owns the persistent Win More account state: balance,
// invested amount, setup focus, and the daily trade counter.
package account

import (
	"log"
	"sync"
	"time"

	"github.com/lostmonster84/winmore/internal/model"
)

var london *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		loc = time.FixedZone("BST", 3600)
	}
	london = loc
}

// Manager guards the account state with a mutex and saves it on every
// mutation.
type Manager struct {
	mu       sync.Mutex
	state    *model.AccountState
	filePath string
	now      func() time.Time
}

// NewManager creates a Manager, loading or initializing state from disk.
// now may be nil, in which case time.Now is used.
func NewManager(filePath string, openingBalance float64, now func() time.Time) (*Manager, error) {
	if now == nil {
		now = time.Now
	}
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}

	// Initialize if fresh state
	if state.Balance == 0 {
		state.Balance = openingBalance
		state.SetupFocus = model.SetupOversoldBounce
		state.TradeDay = tradeDay(now())
	}

	m := &Manager{state: state, filePath: filePath, now: now}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

func tradeDay(t time.Time) string {
	return t.In(london).Format("2006-01-02")
}

// Account returns the current account view, recomputed from the stored
// balance and investment.
func (m *Manager) Account() model.Account {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	a := CreateAccount(m.state.Balance, now)
	a = UpdateAccount(a, m.state.Balance, m.state.Invested, now)
	a.TotalTrades = m.state.TotalTrades
	a.WinningTrades = m.state.WinningTrades
	if m.state.TotalTrades > 0 {
		a.CurrentWinRate = float64(m.state.WinningTrades) / float64(m.state.TotalTrades) * 100
	}
	return a
}

// State returns a copy of the persisted state.
func (m *Manager) State() model.AccountState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollDayLocked()
	return *m.state
}

// SetBalances updates the balance and invested amount from a broker
// portfolio refresh.
func (m *Manager) SetBalances(balance, invested float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Balance = balance
	m.state.Invested = invested
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save account state: %v", err)
	}
}

// SetFocus chooses the month's single setup focus.
func (m *Manager) SetFocus(t model.SetupType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.SetupFocus = t
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save account state: %v", err)
	}
}

// Focus returns the month's chosen setup.
func (m *Manager) Focus() model.SetupType {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.SetupFocus
}

// TradesToday returns today's executed trade count, rolling the counter
// over if the UK calendar day has changed since the last trade.
func (m *Manager) TradesToday() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollDayLocked()
	return m.state.TradesToday
}

// RecordTrade counts an executed trade against today's limit and the
// performance totals.
func (m *Manager) RecordTrade(won bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollDayLocked()
	m.state.TradesToday++
	m.state.TotalTrades++
	if won {
		m.state.WinningTrades++
	}
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save account state: %v", err)
	}
}

// ResetDailyCount zeroes the daily counter (called at UK midnight).
func (m *Manager) ResetDailyCount() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.TradesToday = 0
	m.state.TradeDay = tradeDay(m.now())
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save account state: %v", err)
	}
}

func (m *Manager) rollDayLocked() {
	today := tradeDay(m.now())
	if m.state.TradeDay != today {
		m.state.TradeDay = today
		m.state.TradesToday = 0
	}
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
