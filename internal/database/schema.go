package database

import (
	"database/sql"
	"fmt"
)

// statements are applied in order on every start; each one is idempotent.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS members (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  member_code TEXT,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  photo_path TEXT,
  subscription_type TEXT NOT NULL,
  subscription_start TEXT NOT NULL,
  subscription_end TEXT NOT NULL,
  payment_type TEXT NOT NULL,
  total_amount REAL NOT NULL DEFAULT 0,
  paid_amount REAL NOT NULL DEFAULT 0,
  remaining_amount REAL NOT NULL DEFAULT 0,
  notes TEXT,
  created_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_members_name ON members(name)`,
	`CREATE INDEX IF NOT EXISTS idx_members_phone ON members(phone)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_members_code ON members(member_code) WHERE member_code IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS visitors (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  notes TEXT,
  recorded_by TEXT NOT NULL,
  created_at TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS pt_clients (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  client_code TEXT,
  client_name TEXT NOT NULL,
  phone TEXT NOT NULL,
  coach_name TEXT NOT NULL,
  total_sessions INTEGER NOT NULL DEFAULT 0,
  completed_sessions INTEGER NOT NULL DEFAULT 0,
  remaining_sessions INTEGER NOT NULL DEFAULT 0,
  total_amount REAL NOT NULL DEFAULT 0,
  paid_amount REAL NOT NULL DEFAULT 0,
  remaining_amount REAL NOT NULL DEFAULT 0,
  start_date TEXT NOT NULL,
  end_date TEXT NOT NULL,
  notes TEXT,
  created_at TEXT NOT NULL
)`,
	ancillaryTable("inbody_services"),
	ancillaryTable("dayuse_services"),
	`CREATE TABLE IF NOT EXISTS app_settings (
  setting_key TEXT PRIMARY KEY,
  setting_value TEXT NOT NULL,
  updated_at TEXT NOT NULL
)`,
}

func ancillaryTable(name string) string {
	return `CREATE TABLE IF NOT EXISTS ` + name + ` (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  client_name TEXT NOT NULL,
  phone TEXT NOT NULL,
  price REAL NOT NULL DEFAULT 0,
  staff_name TEXT NOT NULL,
  notes TEXT,
  created_at TEXT NOT NULL
)`
}

// EnsureSchema creates every table and index that does not exist yet.
func EnsureSchema(db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
