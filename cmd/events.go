package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/briis/secspy/pkg/models"
	"github.com/briis/secspy/pkg/secspy"
)

var eventCount int

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Live motion and camera events",
	Long:  `Consume the server's live event stream and print motion, online/offline and arming events as they arrive.`,
}

var eventsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the live event stream",
	Long: `Opens the event stream and blocks, printing each event the server
reports. Stops on interrupt, after --count events, or when the server
drops the connection. The stream is not reconnected automatically.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		stream, err := api.OpenEventStream(ctx)
		if err != nil {
			fmt.Printf("Error opening event stream: %v\n", err)
			os.Exit(1)
		}
		defer stream.Close()

		// Unblock Next when the user interrupts.
		go func() {
			<-ctx.Done()
			stream.Close()
		}()

		fmt.Println("Watching events (Ctrl-C to stop)...")

		enc := json.NewEncoder(os.Stdout)
		seen := 0
		for {
			evt, err := stream.Next()
			if errors.Is(err, secspy.ErrStreamClosed) {
				fmt.Println("Event stream closed.")
				return
			}
			if err != nil {
				fmt.Printf("Error: stream disconnected: %v\n", err)
				os.Exit(1)
			}

			if jsonOutput {
				if err := enc.Encode(evt); err != nil {
					fmt.Printf("Error encoding JSON: %v\n", err)
					os.Exit(1)
				}
			} else {
				printEvent(evt)
			}

			seen++
			if eventCount > 0 && seen >= eventCount {
				return
			}
		}
	},
}

func printEvent(evt models.Event) {
	line := fmt.Sprintf("%s  camera %s  %s",
		evt.Timestamp.Format("2006-01-02 15:04:05"),
		evt.CameraNumber,
		evt.Type,
	)
	if evt.Object != "" {
		line += fmt.Sprintf("  object=%s (human=%d vehicle=%d)", evt.Object, evt.HumanScore, evt.VehicleScore)
	}
	if evt.Mode != "" {
		line += fmt.Sprintf("  mode=%s", evt.Mode)
	}
	if evt.FilePath != "" {
		line += fmt.Sprintf("  file=%s", evt.FilePath)
	}
	fmt.Println(line)
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsWatchCmd)

	eventsWatchCmd.Flags().IntVar(&eventCount, "count", 0, "Stop after this many events (0 = run until interrupted)")
}
