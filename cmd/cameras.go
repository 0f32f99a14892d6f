package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/briis/secspy/pkg/secspy"
)

// Variables to hold flag values
var (
	cameraNum   string
	outputFile  string
	snapWidth   int
	snapHeight  int
	snapQuality int
	fetchLatest bool
)

// Parent Command
var camerasCmd = &cobra.Command{
	Use:   "cameras",
	Short: "Inspect cameras",
	Long:  `List cameras, take snapshots, or download the latest motion recording.`,
}

// List Command
var camerasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cameras",
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cameras, err := api.GetCameras(ctx)
		if err != nil {
			fmt.Printf("Error fetching cameras: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(cameras); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NUM\tNAME\tSTATUS\tDEVICE\tPTZ\tARMED (A/C/M)")
		fmt.Fprintln(w, "---\t----\t------\t------\t---\t-------------")

		for _, cam := range cameras {
			status := "offline"
			if cam.Online() {
				status = "online"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%v/%v/%v\n",
				cam.Number,
				cam.Name,
				status,
				cam.DeviceName,
				cam.PTZCapabilities,
				bool(cam.ModeAction),
				bool(cam.ModeContinuous),
				bool(cam.ModeMotion),
			)
		}
		w.Flush()
	},
}

// Snapshot Command
var camerasSnapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Short:   "Take a JPEG snapshot from a camera",
	Example: `  secspy cameras snapshot --num 0 --output image.jpg`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if fetchLatest {
			fmt.Printf("Fetching latest motion recording for camera %s ...\n", cameraNum)
			data, err := api.GetLatestMotionRecording(ctx, cameraNum)
			if err != nil {
				fmt.Printf("Error fetching recording: %v\n", err)
				os.Exit(1)
			}
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				fmt.Printf("Error writing file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Recording saved to %s\n", outputFile)
			return
		}

		fmt.Printf("Requesting snapshot for camera %s ...\n", cameraNum)

		imgData, err := api.GetSnapshot(ctx, cameraNum, snapshotOptions())
		if err != nil {
			fmt.Printf("Error getting snapshot: %v\n", err)
			os.Exit(1)
		}

		if err := os.WriteFile(outputFile, imgData, 0644); err != nil {
			fmt.Printf("Error writing file: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Snapshot saved to %s\n", outputFile)
	},
}

func snapshotOptions() secspy.SnapshotOptions {
	return secspy.SnapshotOptions{
		Width:   snapWidth,
		Height:  snapHeight,
		Quality: snapQuality,
	}
}

func init() {
	// Register Parent
	rootCmd.AddCommand(camerasCmd)

	// Register Subcommands
	camerasCmd.AddCommand(camerasListCmd)
	camerasCmd.AddCommand(camerasSnapshotCmd)

	// Flags for Snapshot
	camerasSnapshotCmd.Flags().StringVar(&cameraNum, "num", "", "Camera number")
	camerasSnapshotCmd.Flags().StringVar(&outputFile, "output", "snapshot.jpg", "Output filename")
	camerasSnapshotCmd.Flags().IntVar(&snapWidth, "width", 0, "Image width (default 1920)")
	camerasSnapshotCmd.Flags().IntVar(&snapHeight, "height", 0, "Image height (default 1080)")
	camerasSnapshotCmd.Flags().IntVar(&snapQuality, "quality", 0, "JPEG quality (default 75)")
	camerasSnapshotCmd.Flags().BoolVar(&fetchLatest, "recording", false, "Download the latest motion recording instead of a live still")
	_ = camerasSnapshotCmd.MarkFlagRequired("num")
}
