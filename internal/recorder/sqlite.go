package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			setup_type     INTEGER,
			stocks_scanned INTEGER,
			candidates     INTEGER,
			vix_level      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scans(timestamp)`,

		`CREATE TABLE IF NOT EXISTS candidates (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id        INTEGER NOT NULL,
			symbol         TEXT,
			setup_type     INTEGER,
			score          INTEGER,
			recommendation TEXT,
			price          REAL,
			stop           REAL,
			target         REAL,
			rsi            REAL,
			volume_ratio   REAL,
			news_clean     INTEGER,
			FOREIGN KEY (scan_id) REFERENCES scans(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_scan ON candidates(scan_id)`,

		`CREATE TABLE IF NOT EXISTS trade_checks (
			id            TEXT PRIMARY KEY,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT,
			setup_type    INTEGER,
			position_size REAL,
			valid         INTEGER,
			errors        TEXT,
			balance       REAL,
			invested      REAL,
			trades_today  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trade_checks_ts ON trade_checks(timestamp)`,

		`CREATE TABLE IF NOT EXISTS account_snapshots (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			balance           REAL,
			invested          REAL,
			monthly_limit     REAL,
			available         REAL,
			standard_size     REAL,
			exceptional_size  REAL,
			setup_focus       INTEGER,
			total_trades      INTEGER,
			winning_trades    INTEGER,
			win_rate          REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_account_ts ON account_snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordScan(snap *ScanSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`INSERT INTO scans
		(timestamp, setup_type, stocks_scanned, candidates, vix_level)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), int(snap.SetupType), snap.StocksScanned,
		len(snap.Candidates), snap.VIXLevel,
	)
	if err != nil {
		return err
	}
	scanID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, c := range snap.Candidates {
		if _, err := r.db.Exec(`INSERT INTO candidates
			(scan_id, symbol, setup_type, score, recommendation, price, stop, target, rsi, volume_ratio, news_clean)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			scanID, c.Symbol, int(c.SetupType), c.ConvictionScore, string(c.Recommendation),
			c.CurrentPrice, c.CalculatedStop, c.CalculatedTarget,
			c.RSI, c.VolumeVsAverage, c.NewsClean,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTradeCheck(evt *TradeCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO trade_checks
		(id, timestamp, symbol, setup_type, position_size, valid, errors, balance, invested, trades_today)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		evt.ID, time.Now().Unix(), evt.Symbol, int(evt.SetupType),
		evt.PositionSize, evt.Valid, strings.Join(evt.Errors, "; "),
		evt.Balance, evt.Invested, evt.TradesToday,
	)
	return err
}

func (r *SQLiteRecorder) RecordAccount(snap *AccountSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := snap.Account
	_, err := r.db.Exec(`INSERT INTO account_snapshots
		(timestamp, balance, invested, monthly_limit, available,
		 standard_size, exceptional_size, setup_focus,
		 total_trades, winning_trades, win_rate)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), a.CurrentBalance, a.CurrentlyInvested,
		a.MonthlyAllocationLimit, a.AvailableToDeploy,
		a.StandardPositionSize, a.ExceptionalPositionSize, int(snap.Focus),
		a.TotalTrades, a.WinningTrades, a.CurrentWinRate,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
