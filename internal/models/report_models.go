package models

// DashboardStats holds the aggregate figures shown on the dashboard.
type DashboardStats struct {
	TotalMembers      int     `json:"total_members"`
	ActiveMembers     int     `json:"active_members"`
	ExpiredMembers    int     `json:"expired_members"`
	NearExpiryMembers int     `json:"near_expiry_members"`
	TotalPaid         float64 `json:"total_paid"`
	TotalRemaining    float64 `json:"total_remaining"`
	TodayMembers      int     `json:"today_members"`
	TotalVisitors     int     `json:"total_visitors"`
	TodayVisitors     int     `json:"today_visitors"`
	TotalPTClients    int     `json:"total_pt_clients"`
	PTRevenue         float64 `json:"pt_revenue"`
	InBodyRevenue     float64 `json:"inbody_revenue"`
	DayUseRevenue     float64 `json:"dayuse_revenue"`
}

// ExportResult describes a spreadsheet written to disk.
type ExportResult struct {
	FilePath string `json:"file_path"`
	RowCount int    `json:"row_count"`
}

// MemberExportFilter narrows the members written to a spreadsheet.
type MemberExportFilter struct {
	Search           string `json:"search"`
	Status           string `json:"status"` // "", all, active, near_expiry, expired
	SubscriptionType string `json:"subscription_type"`
	OutputDir        string `json:"output_dir"`
}

// VisitorExportFilter narrows the visitors written to a spreadsheet.
type VisitorExportFilter struct {
	Search    string `json:"search"`
	From      string `json:"from"` // YYYY-MM-DD, inclusive
	To        string `json:"to"`   // YYYY-MM-DD, inclusive
	OutputDir string `json:"output_dir"`
}

// FinancialReportFilter selects the output location of the financial report.
type FinancialReportFilter struct {
	From      string `json:"from"`
	To        string `json:"to"`
	OutputDir string `json:"output_dir"`
}
