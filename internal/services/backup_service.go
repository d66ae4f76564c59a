package services

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"gym_club_backend/internal/models"
	"gym_club_backend/pkg/utils"
)

var (
	ErrBackupChecksum = errors.New("backup checksum mismatch")
	ErrBackupExists   = errors.New("target database already exists")
)

// BackupService snapshots the live store next to a SHA-256 sidecar file.
type BackupService interface {
	CreateBackup(outPath string) (*models.BackupInfo, error)
	ListBackups() ([]models.BackupInfo, error)
	PruneBackups(keep int) (int, error)
}

type backupService struct {
	db        *sql.DB
	backupDir string
	now       Clock
}

func NewBackupService(db *sql.DB, backupDir string, clock Clock) BackupService {
	return &backupService{db: db, backupDir: backupDir, now: clockOrNow(clock)}
}

// CreateBackup writes a consistent copy of the open database with VACUUM INTO,
// so it is safe while the server is running.
func (s *backupService) CreateBackup(outPath string) (*models.BackupInfo, error) {
	if strings.TrimSpace(outPath) == "" {
		outPath = filepath.Join(s.backupDir, fmt.Sprintf("gym-%s-%s.db", s.now().Format("20060102-150405"), uuid.NewString()[:8]))
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}
	if _, err := os.Stat(outPath); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrBackupExists, outPath)
	}
	if _, err := s.db.Exec(`VACUUM INTO ?`, outPath); err != nil {
		return nil, fmt.Errorf("snapshot database: %w", err)
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return nil, fmt.Errorf("stat backup: %w", err)
	}
	utils.LogInfo("Database backup created", map[string]interface{}{"path": outPath, "size_bytes": st.Size()})
	return &models.BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime().Format(time.RFC3339), SizeBytes: st.Size()}, nil
}

// ListBackups returns the backups in the backup directory, newest first.
func (s *backupService) ListBackups() ([]models.BackupInfo, error) {
	files, err := os.ReadDir(s.backupDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.BackupInfo{}, nil
		}
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	type entry struct {
		info    models.BackupInfo
		modTime time.Time
	}
	entries := make([]entry, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(s.backupDir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		entries = append(entries, entry{
			info:    models.BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime().Format(time.RFC3339), SizeBytes: st.Size()},
			modTime: st.ModTime(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].modTime.Equal(entries[j].modTime) {
			return entries[i].info.Path > entries[j].info.Path
		}
		return entries[i].modTime.After(entries[j].modTime)
	})
	out := make([]models.BackupInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	return out, nil
}

// PruneBackups deletes all but the newest keep backups. keep <= 0 disables pruning.
func (s *backupService) PruneBackups(keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	backups, err := s.ListBackups()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, b := range backups[min(keep, len(backups)):] {
		if err := os.Remove(b.Path); err != nil {
			return removed, fmt.Errorf("remove backup %s: %w", b.Path, err)
		}
		_ = os.Remove(b.Path + ".sha256")
		removed++
	}
	return removed, nil
}

// RestoreBackup copies a backup over dbPath after verifying its checksum
// sidecar when one exists. The database must not be open.
func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("%w; use --force to overwrite", ErrBackupExists)
		}
	}
	if expected, err := os.ReadFile(backupPath + ".sha256"); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return ErrBackupChecksum
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
