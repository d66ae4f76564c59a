package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	// Flag values outlive a single Execute; start every run from defaults.
	dbPath, envFile = "", ""
	backupOut, restoreFile, restoreForce = "", "", false
	exportOutDir, exportSearch, exportStatus, exportSubType, exportFrom, exportTo = "", "", "all", "all", "", ""

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GYM_DATA_DIR", dir)
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func TestRootHelp(t *testing.T) {
	out := run(t, "--help")
	for _, sub := range []string{"serve", "backup", "export", "stats"} {
		if !strings.Contains(out, sub) {
			t.Errorf("help output is missing %q", sub)
		}
	}
}

func TestStatsOnFreshDatabase(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "custom.db")
	out := run(t, "--db", db, "stats")
	if !strings.Contains(out, "Members:        0") {
		t.Fatalf("unexpected stats output:\n%s", out)
	}
	if _, err := os.Stat(db); err != nil {
		t.Fatalf("--db path was not used: %v", err)
	}
}

func TestExportMembersWritesFile(t *testing.T) {
	dir := isolate(t)
	out := run(t, "export", "members", "--out-dir", filepath.Join(dir, "out"))
	if !strings.Contains(out, "Exported 0 rows to "+filepath.Join(dir, "out")) {
		t.Fatalf("unexpected export output:\n%s", out)
	}
}

func TestBackupCreateListRestore(t *testing.T) {
	dir := isolate(t)
	backup := filepath.Join(dir, "backups", "manual.db")

	out := run(t, "backup", "create", "--out", backup)
	if !strings.Contains(out, "Created backup: "+backup) {
		t.Fatalf("unexpected create output:\n%s", out)
	}
	out = run(t, "backup", "list")
	if !strings.Contains(out, backup) {
		t.Fatalf("backup missing from list:\n%s", out)
	}
	target := filepath.Join(dir, "restored.db")
	out = run(t, "--db", target, "backup", "restore", "--file", backup)
	if !strings.Contains(out, "Restored backup from") {
		t.Fatalf("unexpected restore output:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("restored db missing: %v", err)
	}
}
