package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"gym_club_backend/internal/config"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

// Scheduler runs the nightly backup and the daily expiry watch.
type Scheduler struct {
	cron      *cron.Cron
	cfg       config.SchedulerConfig
	backupSvc services.BackupService
	memberSvc services.MemberService
}

// NewScheduler creates a new scheduler instance. Expressions use the standard
// five-field cron syntax in local time.
func NewScheduler(cfg config.SchedulerConfig, backupSvc services.BackupService, memberSvc services.MemberService) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		cfg:       cfg,
		backupSvc: backupSvc,
		memberSvc: memberSvc,
	}
}

// Start registers both jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.BackupCron, func() { _, _ = s.RunBackup() }); err != nil {
		return fmt.Errorf("schedule backup job %q: %w", s.cfg.BackupCron, err)
	}
	if _, err := s.cron.AddFunc(s.cfg.ExpiryCron, func() { _, _ = s.WatchExpiry() }); err != nil {
		return fmt.Errorf("schedule expiry job %q: %w", s.cfg.ExpiryCron, err)
	}
	s.cron.Start()
	utils.LogInfo("Scheduler started", map[string]interface{}{"backup_cron": s.cfg.BackupCron, "expiry_cron": s.cfg.ExpiryCron})
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	utils.LogInfo("Scheduler stopped")
}

// RunBackup snapshots the database and prunes old snapshots.
func (s *Scheduler) RunBackup() (*models.BackupInfo, error) {
	info, err := s.backupSvc.CreateBackup("")
	if err != nil {
		utils.LogError(err, "Scheduled backup failed")
		return nil, err
	}
	removed, err := s.backupSvc.PruneBackups(s.cfg.KeepBackups)
	if err != nil {
		utils.LogError(err, "Pruning old backups failed")
		return info, err
	}
	if removed > 0 {
		utils.LogInfo("Old backups pruned", map[string]interface{}{"removed": removed, "kept": s.cfg.KeepBackups})
	}
	return info, nil
}

// WatchExpiry logs members inside the near-expiry window and returns them.
func (s *Scheduler) WatchExpiry() ([]models.MemberView, error) {
	members, err := s.memberSvc.GetMembers()
	if err != nil {
		utils.LogError(err, "Expiry watch could not load members")
		return nil, err
	}
	var expiring []models.MemberView
	for _, m := range members {
		if !m.NearExpiry {
			continue
		}
		expiring = append(expiring, m)
		utils.LogInfo("Membership expiring soon", map[string]interface{}{
			"member_id": m.ID, "name": m.Name, "phone": m.Phone, "days_left": m.DaysLeft,
		})
	}
	utils.LogInfo("Expiry watch finished", map[string]interface{}{"members": len(members), "near_expiry": len(expiring)})
	return expiring, nil
}
