package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gym_club_backend/internal/models"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write spreadsheets of members, visitors or finances",
}

var (
	exportOutDir  string
	exportSearch  string
	exportStatus  string
	exportSubType string
	exportFrom    string
	exportTo      string
)

func printExport(cmd *cobra.Command, res *models.ExportResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", res.RowCount, res.FilePath)
}

var exportMembersCmd = &cobra.Command{
	Use:   "members",
	Short: "Export members to .xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := openContainer(cfg)
		if err != nil {
			return err
		}
		defer svc.DB.Close()

		res, err := svc.Export.ExportMembers(models.MemberExportFilter{
			Search: exportSearch, Status: exportStatus, SubscriptionType: exportSubType, OutputDir: exportOutDir,
		})
		if err != nil {
			return err
		}
		printExport(cmd, res)
		return nil
	},
}

var exportVisitorsCmd = &cobra.Command{
	Use:   "visitors",
	Short: "Export the visitor log to .xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := openContainer(cfg)
		if err != nil {
			return err
		}
		defer svc.DB.Close()

		res, err := svc.Export.ExportVisitors(models.VisitorExportFilter{
			Search: exportSearch, From: exportFrom, To: exportTo, OutputDir: exportOutDir,
		})
		if err != nil {
			return err
		}
		printExport(cmd, res)
		return nil
	},
}

var exportFinancialCmd = &cobra.Command{
	Use:   "financial",
	Short: "Export the financial report to .xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := openContainer(cfg)
		if err != nil {
			return err
		}
		defer svc.DB.Close()

		res, err := svc.Export.ExportFinancialReport(models.FinancialReportFilter{From: exportFrom, To: exportTo, OutputDir: exportOutDir})
		if err != nil {
			return err
		}
		printExport(cmd, res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportMembersCmd, exportVisitorsCmd, exportFinancialCmd)
	exportCmd.PersistentFlags().StringVar(&exportOutDir, "out-dir", "", "Output directory (default: GYM_EXPORT_DIR)")

	exportMembersCmd.Flags().StringVar(&exportSearch, "search", "", "Only members whose name, phone or code contains this")
	exportMembersCmd.Flags().StringVar(&exportStatus, "status", "all", "all|active|near_expiry|expired")
	exportMembersCmd.Flags().StringVar(&exportSubType, "type", "all", "all|monthly|quarterly|semiannual|annual")

	exportVisitorsCmd.Flags().StringVar(&exportSearch, "search", "", "Only visitors whose name or phone contains this")
	for _, c := range []*cobra.Command{exportVisitorsCmd, exportFinancialCmd} {
		c.Flags().StringVar(&exportFrom, "from", "", "Start date YYYY-MM-DD (inclusive)")
		c.Flags().StringVar(&exportTo, "to", "", "End date YYYY-MM-DD (inclusive)")
	}
}
