package services

import (
	"database/sql"
	"fmt"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
)

// Paths locates the files services write besides the database.
type Paths struct {
	ExportDir string
	PhotoDir  string
	BackupDir string
}

// Container wires every repository and service over one database handle, so
// the HTTP server, the CLI and the scheduler share one construction path.
type Container struct {
	DB    *sql.DB
	Clock Clock

	MemberRepo  repositories.MemberRepository
	VisitorRepo repositories.VisitorRepository
	PTRepo      repositories.PTClientRepository
	InBodyRepo  repositories.AncillaryRepository
	DayUseRepo  repositories.AncillaryRepository

	Members   MemberService
	Visitors  VisitorService
	PTClients PTClientService
	Ancillary AncillaryService
	Dashboard DashboardService
	Export    ExportService
	Settings  SettingsService
	Backup    BackupService
	Photos    PhotoService
	Lookup    LookupService
}

// NewContainer builds the full service graph. A nil clock uses time.Now.
func NewContainer(db *sql.DB, paths Paths, clock Clock) (*Container, error) {
	clock = clockOrNow(clock)
	inbody, err := repositories.NewAncillaryRepository(db, models.ServiceInBody)
	if err != nil {
		return nil, fmt.Errorf("inbody repository: %w", err)
	}
	dayuse, err := repositories.NewAncillaryRepository(db, models.ServiceDayUse)
	if err != nil {
		return nil, fmt.Errorf("dayuse repository: %w", err)
	}

	c := &Container{
		DB:          db,
		Clock:       clock,
		MemberRepo:  repositories.NewMemberRepository(db),
		VisitorRepo: repositories.NewVisitorRepository(db),
		PTRepo:      repositories.NewPTClientRepository(db),
		InBodyRepo:  inbody,
		DayUseRepo:  dayuse,
	}
	c.Members = NewMemberService(c.MemberRepo, db, clock)
	c.Visitors = NewVisitorService(c.VisitorRepo, db)
	c.PTClients = NewPTClientService(c.PTRepo, db)
	c.Ancillary = NewAncillaryService(db, inbody, dayuse)
	c.Dashboard = NewDashboardService(c.MemberRepo, c.VisitorRepo, c.PTRepo, inbody, dayuse, clock)
	c.Export = NewExportService(c.MemberRepo, c.VisitorRepo, c.PTRepo, inbody, dayuse, paths.ExportDir, clock)
	c.Settings = NewSettingsService(repositories.NewSettingsRepository(db), db)
	c.Backup = NewBackupService(db, paths.BackupDir, clock)
	c.Photos = NewPhotoService(c.Members, paths.PhotoDir)
	c.Lookup = NewLookupService(c.MemberRepo, clock)
	return c, nil
}
