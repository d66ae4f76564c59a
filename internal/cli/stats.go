package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the dashboard figures",
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

		s, err := svc.Dashboard.GetDashboardStats()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Members:        %d (active %d, expired %d, expiring soon %d, new today %d)\n",
			s.TotalMembers, s.ActiveMembers, s.ExpiredMembers, s.NearExpiryMembers, s.TodayMembers)
		fmt.Fprintf(out, "Paid:           %.2f\n", s.TotalPaid)
		fmt.Fprintf(out, "Outstanding:    %.2f\n", s.TotalRemaining)
		fmt.Fprintf(out, "Visitors:       %d (today %d)\n", s.TotalVisitors, s.TodayVisitors)
		fmt.Fprintf(out, "PT clients:     %d (collected %.2f)\n", s.TotalPTClients, s.PTRevenue)
		fmt.Fprintf(out, "InBody revenue: %.2f\n", s.InBodyRevenue)
		fmt.Fprintf(out, "Day-Use revenue: %.2f\n", s.DayUseRevenue)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
