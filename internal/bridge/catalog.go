package bridge

import (
	"context"
	"encoding/json"

	"gym_club_backend/internal/calc"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
)

type idPayload struct {
	ID int64 `json:"id" binding:"gt=0"`
}

type termPayload struct {
	Term string `json:"term"`
}

type updateMemberPayload struct {
	ID     int64                  `json:"id" binding:"gt=0"`
	Record services.MemberRequest `json:"record"`
}

type sessionPayload struct {
	ID                int64 `json:"id" binding:"gt=0"`
	CompletedSessions int   `json:"completed_sessions" binding:"gte=0"`
}

type backupPayload struct {
	Path string `json:"path"`
}

// none adapts a payload-free call.
func none(fn func() (interface{}, error)) func(context.Context, json.RawMessage) (interface{}, error) {
	return func(context.Context, json.RawMessage) (interface{}, error) { return fn() }
}

// with decodes and validates a T before calling fn.
func with[T any](d *Dispatcher, fn func(ctx context.Context, req T) (interface{}, error)) func(context.Context, json.RawMessage) (interface{}, error) {
	return func(ctx context.Context, payload json.RawMessage) (interface{}, error) {
		var req T
		if err := d.decode(payload, &req); err != nil {
			return nil, err
		}
		return fn(ctx, req)
	}
}

func catalog(d *Dispatcher, svc Services) map[string]Operation {
	ops := map[string]Operation{
		"saveMember": {"failed to save member", with(d, func(_ context.Context, req services.MemberRequest) (interface{}, error) {
			m, err := svc.Members.CreateMember(req)
			if err != nil {
				return nil, err
			}
			return m.ID, nil
		})},
		"getMembers": {"failed to load members", none(func() (interface{}, error) {
			return svc.Members.GetMembers()
		})},
		"getMember": {"failed to load member", with(d, func(_ context.Context, req idPayload) (interface{}, error) {
			m, err := svc.Members.GetMemberByID(req.ID)
			if err != nil {
				return nil, err
			}
			return calc.View(*m, svc.Clock()), nil
		})},
		"updateMember": {"failed to update member", with(d, func(_ context.Context, req updateMemberPayload) (interface{}, error) {
			return svc.Members.UpdateMember(req.ID, req.Record)
		})},
		"deleteMember": {"failed to delete member", with(d, func(_ context.Context, req idPayload) (interface{}, error) {
			return req.ID, svc.Members.DeleteMember(req.ID)
		})},
		"searchMembers": {"failed to search members", with(d, func(_ context.Context, req termPayload) (interface{}, error) {
			return svc.Members.SearchMembers(req.Term)
		})},
		"getNextMemberId": {"failed to get next member id", none(func() (interface{}, error) {
			return svc.Members.NextMemberCode()
		})},
		"lookupMember": {"failed to look up member", with(d, func(ctx context.Context, req termPayload) (interface{}, error) {
			return svc.Lookup.LookupMember(ctx, req.Term)
		})},
		"getDashboardStats": {"failed to load dashboard stats", none(func() (interface{}, error) {
			return svc.Dashboard.GetDashboardStats()
		})},
		"exportMembersToExcel": {"failed to export members", with(d, func(_ context.Context, req models.MemberExportFilter) (interface{}, error) {
			return svc.Export.ExportMembers(req)
		})},
		"exportVisitorsToExcel": {"failed to export visitors", with(d, func(_ context.Context, req models.VisitorExportFilter) (interface{}, error) {
			return svc.Export.ExportVisitors(req)
		})},
		"exportFinancialReport": {"failed to export financial report", with(d, func(_ context.Context, req models.FinancialReportFilter) (interface{}, error) {
			return svc.Export.ExportFinancialReport(req)
		})},

		"getVisitors": {"failed to load visitors", none(func() (interface{}, error) {
			return svc.Visitors.GetVisitors()
		})},
		"addVisitor": {"failed to add visitor", with(d, func(_ context.Context, req services.VisitorRequest) (interface{}, error) {
			v, err := svc.Visitors.AddVisitor(req)
			if err != nil {
				return nil, err
			}
			return v.ID, nil
		})},
		"deleteVisitor": {"failed to delete visitor", with(d, func(_ context.Context, req idPayload) (interface{}, error) {
			return req.ID, svc.Visitors.DeleteVisitor(req.ID)
		})},

		"getPTClients": {"failed to load PT clients", none(func() (interface{}, error) {
			return svc.PTClients.GetPTClients()
		})},
		"addPTClient": {"failed to add PT client", with(d, func(_ context.Context, req services.PTClientRequest) (interface{}, error) {
			c, err := svc.PTClients.AddPTClient(req)
			if err != nil {
				return nil, err
			}
			return c.ID, nil
		})},
		"deletePTClient": {"failed to delete PT client", with(d, func(_ context.Context, req idPayload) (interface{}, error) {
			return req.ID, svc.PTClients.DeletePTClient(req.ID)
		})},
		"updatePTSession": {"failed to update PT session", with(d, func(_ context.Context, req sessionPayload) (interface{}, error) {
			return svc.PTClients.UpdateSessions(req.ID, req.CompletedSessions)
		})},

		"getSettings": {"failed to load settings", none(func() (interface{}, error) {
			return svc.Settings.GetSettings()
		})},
		"saveSetting": {"failed to save setting", with(d, func(_ context.Context, req services.SettingRequest) (interface{}, error) {
			return svc.Settings.SaveSetting(req)
		})},
		"createBackup": {"failed to create backup", with(d, func(_ context.Context, req backupPayload) (interface{}, error) {
			return svc.Backup.CreateBackup(req.Path)
		})},
	}

	for kind, label := range map[string]string{models.ServiceInBody: "InBody", models.ServiceDayUse: "DayUse"} {
		kind := kind
		ops["get"+label+"Services"] = Operation{"failed to load " + label + " services", none(func() (interface{}, error) {
			return svc.Ancillary.GetServices(kind)
		})}
		ops["add"+label+"Service"] = Operation{"failed to add " + label + " service", with(d, func(_ context.Context, req services.AncillaryRequest) (interface{}, error) {
			rec, err := svc.Ancillary.AddService(kind, req)
			if err != nil {
				return nil, err
			}
			return rec.ID, nil
		})}
		ops["delete"+label+"Service"] = Operation{"failed to delete " + label + " service", with(d, func(_ context.Context, req idPayload) (interface{}, error) {
			return req.ID, svc.Ancillary.DeleteService(kind, req.ID)
		})}
	}
	return ops
}
