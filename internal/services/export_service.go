package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"gym_club_backend/internal/calc"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
	"gym_club_backend/pkg/utils"
)

var ErrExportValidation = errors.New("export filter validation error")

var (
	memberHeaders = []interface{}{
		"ID", "Member Code", "Name", "Phone", "Subscription Type", "Start Date", "End Date", "Status",
		"Days Left", "Payment Type", "Total Amount", "Paid Amount", "Remaining Amount", "Notes", "Registered At",
	}
	visitorHeaders = []interface{}{"ID", "Name", "Phone", "Recorded By", "Notes", "Visited At"}
	ledgerHeaders  = []interface{}{
		"Name", "Member Code", "Subscription Type", "Payment Type", "Start Date", "Total Amount", "Paid Amount", "Remaining Amount",
	}
	ptHeaders = []interface{}{
		"Client", "Coach", "Total Sessions", "Completed Sessions", "Remaining Sessions",
		"Total Amount", "Paid Amount", "Remaining Amount", "Start Date", "End Date",
	}
	serviceHeaders = []interface{}{"Service", "Client", "Phone", "Price", "Staff", "Date"}
)

// ExportService writes filtered collections to .xlsx files on local disk.
type ExportService interface {
	ExportMembers(filter models.MemberExportFilter) (*models.ExportResult, error)
	ExportVisitors(filter models.VisitorExportFilter) (*models.ExportResult, error)
	ExportFinancialReport(filter models.FinancialReportFilter) (*models.ExportResult, error)
}

type exportService struct {
	memberRepo  repositories.MemberRepository
	visitorRepo repositories.VisitorRepository
	ptRepo      repositories.PTClientRepository
	inbodyRepo  repositories.AncillaryRepository
	dayuseRepo  repositories.AncillaryRepository
	exportDir   string
	now         Clock
}

func NewExportService(
	memberRepo repositories.MemberRepository,
	visitorRepo repositories.VisitorRepository,
	ptRepo repositories.PTClientRepository,
	inbodyRepo repositories.AncillaryRepository,
	dayuseRepo repositories.AncillaryRepository,
	exportDir string,
	clock Clock,
) ExportService {
	return &exportService{
		memberRepo:  memberRepo,
		visitorRepo: visitorRepo,
		ptRepo:      ptRepo,
		inbodyRepo:  inbodyRepo,
		dayuseRepo:  dayuseRepo,
		exportDir:   exportDir,
		now:         clockOrNow(clock),
	}
}

// sheetWriter appends rows to one worksheet, starting with its header row.
type sheetWriter struct {
	file *excelize.File
	name string
	row  int
}

func newSheet(file *excelize.File, name string, first bool, headers []interface{}) (*sheetWriter, error) {
	if first {
		if err := file.SetSheetName("Sheet1", name); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := file.NewSheet(name); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", name, err)
	}
	w := &sheetWriter{file: file, name: name}
	if err := w.append(headers); err != nil {
		return nil, err
	}
	w.boldHeader(len(headers))
	return w, nil
}

// boldHeader styles the header row. Failures are logged, not returned.
func (w *sheetWriter) boldHeader(columns int) {
	bold, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		utils.LogError(err, "Export: failed to create header style for "+w.name)
		return
	}
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		utils.LogError(err, "Export: failed to resolve header range for "+w.name)
		return
	}
	if err := w.file.SetCellStyle(w.name, "A1", last, bold); err != nil {
		utils.LogError(err, "Export: failed to style header row of "+w.name)
	}
}

func (w *sheetWriter) append(values []interface{}) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(w.name, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", w.name, w.row, err)
	}
	return nil
}

// dataRows is the number of rows written after the header.
func (w *sheetWriter) dataRows() int {
	return w.row - 1
}

func (s *exportService) outputPath(kind, dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = s.exportDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	name := fmt.Sprintf("%s-%s-%s.xlsx", kind, s.now().Format("20060102-150405"), uuid.NewString()[:8])
	return filepath.Join(dir, name), nil
}

func (s *exportService) save(file *excelize.File, kind, dir string, rows int) (*models.ExportResult, error) {
	path, err := s.outputPath(kind, dir)
	if err != nil {
		return nil, err
	}
	if err := file.SaveAs(path); err != nil {
		return nil, fmt.Errorf("save %s export: %w", kind, err)
	}
	utils.LogInfo("Spreadsheet exported", map[string]interface{}{"kind": kind, "path": path, "rows": rows})
	return &models.ExportResult{FilePath: path, RowCount: rows}, nil
}

func validateRange(from, to string) error {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := calc.ParseDate(d); err != nil {
			return fmt.Errorf("%w: %v", ErrExportValidation, err)
		}
	}
	if from != "" && to != "" && from > to {
		return fmt.Errorf("%w: from date is after to date", ErrExportValidation)
	}
	return nil
}

func statusMatches(filter string, v models.MemberView) bool {
	switch filter {
	case models.StatusActive:
		return !v.Expired
	case models.StatusNearExpiry:
		return v.NearExpiry
	case models.StatusExpired:
		return v.Expired
	default:
		return true
	}
}

func (s *exportService) ExportMembers(filter models.MemberExportFilter) (*models.ExportResult, error) {
	status := normalizeEnum(filter.Status)
	if status != "" && status != "all" && !oneOf(status, []string{models.StatusActive, models.StatusNearExpiry, models.StatusExpired}) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrExportValidation, filter.Status)
	}
	subType := normalizeEnum(filter.SubscriptionType)
	if subType != "" && subType != "all" && !oneOf(subType, models.SubscriptionTypes) {
		return nil, fmt.Errorf("%w: unknown subscription type %q", ErrExportValidation, filter.SubscriptionType)
	}

	var members []models.Member
	var err error
	if strings.TrimSpace(filter.Search) != "" {
		members, err = s.memberRepo.SearchMembers(filter.Search)
	} else {
		members, err = s.memberRepo.GetMembers()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load members for export: %w", err)
	}

	file := excelize.NewFile()
	defer file.Close()
	sheet, err := newSheet(file, "Members", true, memberHeaders)
	if err != nil {
		return nil, err
	}

	for _, v := range calc.Views(members, s.now()) {
		if !statusMatches(status, v) {
			continue
		}
		if subType != "" && subType != "all" && v.SubscriptionType != subType {
			continue
		}
		err := sheet.append([]interface{}{
			v.ID, utils.StringValue(v.MemberCode), v.Name, v.Phone, v.SubscriptionType, v.SubscriptionStart,
			v.SubscriptionEnd, v.Status, v.DaysLeft, v.PaymentType, v.TotalAmount, v.PaidAmount,
			v.RemainingAmount, utils.StringValue(v.Notes), v.CreatedAt,
		})
		if err != nil {
			return nil, err
		}
	}
	return s.save(file, "members", filter.OutputDir, sheet.dataRows())
}

func (s *exportService) ExportVisitors(filter models.VisitorExportFilter) (*models.ExportResult, error) {
	if err := validateRange(filter.From, filter.To); err != nil {
		return nil, err
	}
	visitors, err := s.visitorRepo.GetVisitors()
	if err != nil {
		return nil, fmt.Errorf("failed to load visitors for export: %w", err)
	}

	file := excelize.NewFile()
	defer file.Close()
	sheet, err := newSheet(file, "Visitors", true, visitorHeaders)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	loc := s.now().Location()
	for _, v := range visitors {
		if term != "" && !strings.Contains(strings.ToLower(v.Name), term) && !strings.Contains(strings.ToLower(v.Phone), term) {
			continue
		}
		if !calc.InDateRange(v.CreatedAt, filter.From, filter.To, loc) {
			continue
		}
		if err := sheet.append([]interface{}{v.ID, v.Name, v.Phone, v.RecordedBy, utils.StringValue(v.Notes), v.CreatedAt}); err != nil {
			return nil, err
		}
	}
	return s.save(file, "visitors", filter.OutputDir, sheet.dataRows())
}

func inRange(date, from, to string) bool {
	return (from == "" || date >= from) && (to == "" || date <= to)
}

// ExportFinancialReport writes the membership ledger, PT packages and billed
// services on separate sheets, followed by a summary of totals.
func (s *exportService) ExportFinancialReport(filter models.FinancialReportFilter) (*models.ExportResult, error) {
	if err := validateRange(filter.From, filter.To); err != nil {
		return nil, err
	}
	members, err := s.memberRepo.GetMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to load members for financial report: %w", err)
	}
	clients, err := s.ptRepo.GetPTClients()
	if err != nil {
		return nil, fmt.Errorf("failed to load PT clients for financial report: %w", err)
	}
	inbody, err := s.inbodyRepo.GetServices()
	if err != nil {
		return nil, fmt.Errorf("failed to load InBody services for financial report: %w", err)
	}
	dayuse, err := s.dayuseRepo.GetServices()
	if err != nil {
		return nil, fmt.Errorf("failed to load Day-Use services for financial report: %w", err)
	}

	file := excelize.NewFile()
	defer file.Close()

	ledger, err := newSheet(file, "Members", true, ledgerHeaders)
	if err != nil {
		return nil, err
	}
	var memberPaid, memberRemaining float64
	for _, m := range members {
		if !inRange(m.SubscriptionStart, filter.From, filter.To) {
			continue
		}
		memberPaid += m.PaidAmount
		memberRemaining += m.RemainingAmount
		err := ledger.append([]interface{}{
			m.Name, utils.StringValue(m.MemberCode), m.SubscriptionType, m.PaymentType, m.SubscriptionStart,
			m.TotalAmount, m.PaidAmount, m.RemainingAmount,
		})
		if err != nil {
			return nil, err
		}
	}

	pt, err := newSheet(file, "PT Clients", false, ptHeaders)
	if err != nil {
		return nil, err
	}
	var ptPaid, ptRemaining float64
	for _, c := range clients {
		if !inRange(c.StartDate, filter.From, filter.To) {
			continue
		}
		ptPaid += c.PaidAmount
		ptRemaining += c.RemainingAmount
		err := pt.append([]interface{}{
			c.ClientName, c.CoachName, c.TotalSessions, c.CompletedSessions, c.RemainingSessions,
			c.TotalAmount, c.PaidAmount, c.RemainingAmount, c.StartDate, c.EndDate,
		})
		if err != nil {
			return nil, err
		}
	}

	services, err := newSheet(file, "Services", false, serviceHeaders)
	if err != nil {
		return nil, err
	}
	loc := s.now().Location()
	totals := map[string]float64{}
	for _, group := range [][]models.AncillaryService{inbody, dayuse} {
		for _, r := range group {
			if !calc.InDateRange(r.CreatedAt, filter.From, filter.To, loc) {
				continue
			}
			totals[r.Kind] += r.Price
			if err := services.append([]interface{}{serviceLabel(r.Kind), r.ClientName, r.Phone, r.Price, r.StaffName, r.CreatedAt}); err != nil {
				return nil, err
			}
		}
	}

	summary, err := newSheet(file, "Summary", false, []interface{}{"Item", "Amount"})
	if err != nil {
		return nil, err
	}
	collected := memberPaid + ptPaid + totals[models.ServiceInBody] + totals[models.ServiceDayUse]
	for _, line := range [][]interface{}{
		{"Membership collected", memberPaid},
		{"Membership outstanding", memberRemaining},
		{"PT collected", ptPaid},
		{"PT outstanding", ptRemaining},
		{"InBody revenue", totals[models.ServiceInBody]},
		{"Day-Use revenue", totals[models.ServiceDayUse]},
		{"Total collected", collected},
	} {
		if err := summary.append(line); err != nil {
			return nil, err
		}
	}

	rows := ledger.dataRows() + pt.dataRows() + services.dataRows()
	return s.save(file, "financial", filter.OutputDir, rows)
}

func serviceLabel(kind string) string {
	switch kind {
	case models.ServiceInBody:
		return "InBody"
	case models.ServiceDayUse:
		return "Day-Use"
	default:
		return kind
	}
}

