package services_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gym_club_backend/internal/database"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
	"gym_club_backend/internal/services"
)

func TestBackupCreateAndRestore(t *testing.T) {
	f := newFixture(t)
	mustCreateMember(t, f.memberSvc, memberReq("Saved", "0101", "2025-03-01", models.SubscriptionMonthly))
	dir := t.TempDir()
	svc := services.NewBackupService(f.db, dir, clock)

	info, err := svc.CreateBackup("")
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	base := filepath.Base(info.Path)
	if !strings.HasPrefix(base, "gym-20250310-143000-") || !strings.HasSuffix(base, ".db") || len(info.Checksum) != 64 || info.SizeBytes == 0 {
		t.Fatalf("unexpected backup info %+v", info)
	}
	second, err := svc.CreateBackup("")
	if err != nil {
		t.Fatalf("second backup in the same second: %v", err)
	}
	if second.Path == info.Path {
		t.Fatalf("default backup names collided: %s", second.Path)
	}
	if _, err := svc.CreateBackup(info.Path); !errors.Is(err, services.ErrBackupExists) {
		t.Fatalf("expected existing backup to be refused, got %v", err)
	}

	target := filepath.Join(t.TempDir(), "restored.db")
	if err := services.RestoreBackup(info.Path, target, false); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if err := services.RestoreBackup(info.Path, target, false); !errors.Is(err, services.ErrBackupExists) {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}
	restored, err := database.Open(target)
	if err != nil {
		t.Fatalf("open restored: %v", err)
	}
	defer restored.Close()
	members, err := repositories.NewMemberRepository(restored).GetMembers()
	if err != nil || len(members) != 1 || members[0].Name != "Saved" {
		t.Fatalf("restored members = %v, %v", members, err)
	}
}

func TestRestoreRejectsTamperedBackup(t *testing.T) {
	f := newFixture(t)
	svc := services.NewBackupService(f.db, t.TempDir(), clock)
	info, err := svc.CreateBackup("")
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if err := os.WriteFile(info.Path+".sha256", []byte("deadbeef\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err = services.RestoreBackup(info.Path, filepath.Join(t.TempDir(), "x.db"), true)
	if !errors.Is(err, services.ErrBackupChecksum) {
		t.Fatalf("expected checksum error, got %v", err)
	}
}

func TestListAndPruneBackups(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	svc := services.NewBackupService(f.db, dir, clock)

	if list, err := services.NewBackupService(f.db, filepath.Join(dir, "missing"), clock).ListBackups(); err != nil || len(list) != 0 {
		t.Fatalf("missing dir should list nothing, got %v %v", list, err)
	}
	for _, name := range []string{"a.db", "b.db", "c.db"} {
		if _, err := svc.CreateBackup(filepath.Join(dir, name)); err != nil {
			t.Fatalf("backup %s: %v", name, err)
		}
	}
	list, err := svc.ListBackups()
	if err != nil || len(list) != 3 {
		t.Fatalf("list = %v, %v", list, err)
	}
	removed, err := svc.PruneBackups(1)
	if err != nil || removed != 2 {
		t.Fatalf("prune removed %d, %v", removed, err)
	}
	list, _ = svc.ListBackups()
	if len(list) != 1 {
		t.Fatalf("expected one backup left, got %d", len(list))
	}
	if _, err := os.Stat(list[0].Path + ".sha256"); err != nil {
		t.Fatalf("kept backup lost its checksum: %v", err)
	}
}
