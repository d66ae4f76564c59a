package scheduler_test

import (
	"path/filepath"
	"testing"
	"time"

	"gym_club_backend/internal/config"
	"gym_club_backend/internal/database"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/scheduler"
	"gym_club_backend/internal/services"
)

var fixedNow = time.Date(2025, 3, 10, 3, 0, 0, 0, time.Local)

func newContainer(t *testing.T) *services.Container {
	t.Helper()
	dir := t.TempDir()
	db, err := database.OpenAndInit(filepath.Join(dir, "gym.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	c, err := services.NewContainer(db, services.Paths{
		ExportDir: filepath.Join(dir, "exports"),
		PhotoDir:  filepath.Join(dir, "photos"),
		BackupDir: filepath.Join(dir, "backups"),
	}, func() time.Time { return fixedNow })
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	return c
}

func TestWatchExpiryFindsNearExpiryMembers(t *testing.T) {
	c := newContainer(t)
	for name, start := range map[string]string{"Soon": "2025-02-14", "Later": "2025-03-01", "Gone": "2025-01-01"} {
		_, err := c.Members.CreateMember(services.MemberRequest{
			Name: name, Phone: "0100", SubscriptionType: models.SubscriptionMonthly, SubscriptionStart: start,
			PaymentType: models.PaymentCash,
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	s := scheduler.NewScheduler(config.SchedulerConfig{KeepBackups: 2}, c.Backup, c.Members)
	expiring, err := s.WatchExpiry()
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if len(expiring) != 1 || expiring[0].Name != "Soon" || expiring[0].DaysLeft != 4 {
		t.Fatalf("unexpected expiring members %+v", expiring)
	}
}

func TestRunBackupCreatesSnapshot(t *testing.T) {
	c := newContainer(t)
	s := scheduler.NewScheduler(config.SchedulerConfig{KeepBackups: 1}, c.Backup, c.Members)
	info, err := s.RunBackup()
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	list, _ := c.Backup.ListBackups()
	if len(list) != 1 || list[0].Path != info.Path {
		t.Fatalf("backups = %+v", list)
	}
}

func TestStartRejectsBadCron(t *testing.T) {
	c := newContainer(t)
	s := scheduler.NewScheduler(config.SchedulerConfig{BackupCron: "not a cron", ExpiryCron: "0 8 * * *"}, c.Backup, c.Members)
	if err := s.Start(); err == nil {
		s.Stop()
		t.Fatal("expected invalid cron expression to fail")
	}
}
