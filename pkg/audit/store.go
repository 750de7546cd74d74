package audit

import (
	"database/sql"
	"encoding/json"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists audit messages to a SQLite database, mirroring the syslog
// line format column for column so the audit trail survives log rotation.
type Store struct {
	db *sql.DB
}

// Message represents an audit message row
type Message struct {
	Facility  int            `json:"facility"`
	Severity  int            `json:"severity"`
	Timestamp time.Time      `json:"timestamp"`
	Hostname  string         `json:"hostname"`
	Appname   string         `json:"appname"`
	Procid    string         `json:"procid"`
	Msgid     string         `json:"msgid"`
	Sdata     map[string]any `json:"sdata"`
	Message   string         `json:"message"`
}

// NewStore creates an audit store from FOLIOBOARD_AUDIT_DB.
// Returns nil if FOLIOBOARD_AUDIT_DB is not set (audit DB disabled).
func NewStore() (*Store, error) {
	path := os.Getenv("FOLIOBOARD_AUDIT_DB")
	if path == "" {
		return nil, nil
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB creates a store with an existing database connection
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Init creates the messages table if it doesn't exist.
func (s *Store) Init() error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS messages (
			facility INTEGER NOT NULL,
			severity INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			hostname TEXT,
			appname TEXT,
			procid TEXT,
			msgid TEXT,
			sdata TEXT,
			message TEXT
		)
	`)
	return err
}

// Save persists an audit event to the database
func (s *Store) Save(event Event) error {
	if s.db == nil {
		return nil
	}

	hostname, _ := os.Hostname()
	sdata := event.StructuredData()

	sdataJSON, err := json.Marshal(sdata)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO messages (facility, severity, timestamp, hostname, appname, procid, msgid, sdata, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		event.Facility(),
		int(event.Severity()),
		time.Now().UTC(),
		hostname,
		"folioboard",
		os.Getpid(),
		event.MessageID(),
		sdataJSON,
		event.Message(),
	)

	return err
}

// DB returns the underlying database connection (for testing)
func (s *Store) DB() *sql.DB {
	return s.db
}
