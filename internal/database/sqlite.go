package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

var (
	db   *sql.DB
	once sync.Once
)

func Init(dbPath string) error {
	var err error
	once.Do(func() {
		dir := filepath.Dir(dbPath)
		if dir != "" && dir != "." {
			if err = os.MkdirAll(dir, 0755); err != nil {
				return
			}
		}

		dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return
		}
		if err = db.Ping(); err != nil {
			return
		}

		// SQLite is single-writer; keep the pool at one connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		err = createTables()
	})
	return err
}

func GetDB() *sql.DB {
	return db
}

func createTables() error {
	// The primary key on id enforces the registry uniqueness invariant;
	// concurrent creates racing on the same id are serialized here.
	schema := `
	CREATE TABLE IF NOT EXISTS models (
		id TEXT PRIMARY KEY,
		created INTEGER NOT NULL,
		detail_id TEXT NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'text',
		description TEXT NOT NULL DEFAULT '',
		max_tokens INTEGER NOT NULL DEFAULT 4096,
		endpoint TEXT NOT NULL DEFAULT '',
		owner TEXT NOT NULL DEFAULT '',
		permissions TEXT NOT NULL DEFAULT '[]'
	);
	`
	_, err := db.Exec(schema)
	return err
}

func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
