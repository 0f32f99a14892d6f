package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var schedulePresetID string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server information and schedule presets",
}

var serverInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server name, version and schedule presets",
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		info, err := api.GetServerInfo(ctx)
		if err != nil {
			fmt.Printf("Error fetching server information: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		fmt.Printf("Name:     %s\n", info.Name)
		fmt.Printf("UUID:     %s\n", info.UUID)
		fmt.Printf("Version:  %s\n", info.Version)
		fmt.Printf("Address:  %s:%d\n", info.IPAddress, info.Port)

		if len(info.SchedulePresets) > 0 {
			fmt.Println("\nSchedule presets:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			fmt.Fprintln(w, "--\t----")
			for _, p := range info.SchedulePresets {
				fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Name)
			}
			w.Flush()
		}
	},
}

var serverPresetCmd = &cobra.Command{
	Use:     "preset",
	Short:   "Activate a server-wide schedule preset",
	Example: `  secspy server preset --id 1730485600`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := api.EnableSchedulePreset(ctx, schedulePresetID); err != nil {
			fmt.Printf("Error activating schedule preset: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Schedule preset %s activated.\n", schedulePresetID)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(serverInfoCmd)
	serverCmd.AddCommand(serverPresetCmd)

	serverPresetCmd.Flags().StringVar(&schedulePresetID, "id", "", "Schedule preset ID")
	_ = serverPresetCmd.MarkFlagRequired("id")
}
