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
	ptzCameraNum string
	ptzPresetNum int
	ptzDirection string
)

var directions = map[string]secspy.Direction{
	"left":     secspy.DirectionLeft,
	"right":    secspy.DirectionRight,
	"up":       secspy.DirectionUp,
	"down":     secspy.DirectionDown,
	"zoom-in":  secspy.DirectionZoomIn,
	"zoom-out": secspy.DirectionZoomOut,
	"home":     secspy.DirectionHome,
}

var ptzCmd = &cobra.Command{
	Use:   "ptz",
	Short: "Control pan-tilt-zoom cameras",
	Long:  `List preset positions, report capabilities, and move PTZ cameras.`,
}

var ptzPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List a camera's PTZ presets and capabilities",
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cam, err := api.GetCamera(ctx, ptzCameraNum)
		if err != nil {
			fmt.Printf("Error fetching camera: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(cam.PTZPresets); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		fmt.Printf("Camera %s (%s) capabilities: %s\n", cam.Number, cam.Name, cam.PTZCapabilities)

		if len(cam.PTZPresets) == 0 {
			fmt.Println("No presets defined.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "INDEX\tNAME")
		fmt.Fprintln(w, "-----\t----")
		for _, p := range cam.PTZPresets {
			fmt.Fprintf(w, "%d\t%s\n", p.Index, p.Name)
		}
		w.Flush()
	},
}

var ptzGotoCmd = &cobra.Command{
	Use:     "goto",
	Short:   "Move a camera to a saved preset",
	Example: `  secspy ptz goto --num 1 --preset 3`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := api.GotoPreset(ctx, ptzCameraNum, ptzPresetNum); err != nil {
			fmt.Printf("Error moving to preset: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Camera %s moving to preset %d.\n", ptzCameraNum, ptzPresetNum)
	},
}

var ptzSaveCmd = &cobra.Command{
	Use:     "save",
	Short:   "Save the camera's current position as a preset",
	Example: `  secspy ptz save --num 1 --preset 3`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := api.SavePreset(ctx, ptzCameraNum, ptzPresetNum); err != nil {
			fmt.Printf("Error saving preset: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved preset %d on camera %s.\n", ptzPresetNum, ptzCameraNum)
	},
}

var ptzMoveCmd = &cobra.Command{
	Use:     "move",
	Short:   "Start a continuous movement (stop with 'ptz stop')",
	Example: `  secspy ptz move --num 1 --direction left`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, ok := directions[ptzDirection]
		if !ok {
			fmt.Printf("Error: unknown direction %q (left, right, up, down, zoom-in, zoom-out, home)\n", ptzDirection)
			os.Exit(1)
		}

		api := newClient()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := api.PTZMove(ctx, ptzCameraNum, dir); err != nil {
			fmt.Printf("Error moving camera: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Camera %s moving %s.\n", ptzCameraNum, ptzDirection)
	},
}

var ptzStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a continuous movement",
	Run: func(cmd *cobra.Command, args []string) {
		api := newClient()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := api.PTZStop(ctx, ptzCameraNum); err != nil {
			fmt.Printf("Error stopping camera: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Camera %s stopped.\n", ptzCameraNum)
	},
}

func init() {
	rootCmd.AddCommand(ptzCmd)

	ptzCmd.AddCommand(ptzPresetsCmd)
	ptzCmd.AddCommand(ptzGotoCmd)
	ptzCmd.AddCommand(ptzSaveCmd)
	ptzCmd.AddCommand(ptzMoveCmd)
	ptzCmd.AddCommand(ptzStopCmd)

	ptzCmd.PersistentFlags().StringVar(&ptzCameraNum, "num", "", "Camera number")
	_ = ptzCmd.MarkPersistentFlagRequired("num")

	ptzGotoCmd.Flags().IntVar(&ptzPresetNum, "preset", 0, "Preset index (1-12)")
	_ = ptzGotoCmd.MarkFlagRequired("preset")
	ptzSaveCmd.Flags().IntVar(&ptzPresetNum, "preset", 0, "Preset index (1-12)")
	_ = ptzSaveCmd.MarkFlagRequired("preset")

	ptzMoveCmd.Flags().StringVar(&ptzDirection, "direction", "", "Movement direction")
	_ = ptzMoveCmd.MarkFlagRequired("direction")
}
