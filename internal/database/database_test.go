package database

import (
	"path/filepath"
	"testing"
)

func TestEnsureSchemaIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DBFileName)
	for i := 0; i < 2; i++ {
		db, err := OpenAndInit(path)
		if err != nil {
			t.Fatalf("open run %d: %v", i+1, err)
		}
		db.Close()
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"members", "visitors", "pt_clients", "inbody_services", "dayuse_services", "app_settings"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestOpenFailsOnDirectoryPath(t *testing.T) {
	dir := t.TempDir()
	if _, err := OpenAndInit(dir); err == nil {
		t.Fatalf("expected error opening a directory as database")
	}
}
