package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/briis/secspy/pkg/models"
)

// Variables to hold flag values
var (
	armCameraNum string
	armMode      string
)

var recordingModes = map[string]models.RecordingMode{
	"action":     models.RecordingModeAction,
	"motion":     models.RecordingModeMotion,
	"continuous": models.RecordingModeContinuous,
}

func setArm(enabled bool) {
	mode, ok := recordingModes[armMode]
	if !ok {
		fmt.Printf("Error: unknown mode %q (action, motion, continuous)\n", armMode)
		os.Exit(1)
	}

	api := newClient()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := api.SetArmMode(ctx, armCameraNum, mode, enabled); err != nil {
		fmt.Printf("Error changing arm mode: %v\n", err)
		os.Exit(1)
	}

	verb := "disarmed"
	if enabled {
		verb = "armed"
	}
	fmt.Printf("Camera %s %s for %s recording.\n", armCameraNum, verb, armMode)
}

var armCmd = &cobra.Command{
	Use:     "arm",
	Short:   "Arm a camera's recording schedule",
	Example: `  secspy arm --num 0 --mode motion`,
	Run: func(cmd *cobra.Command, args []string) {
		setArm(true)
	},
}

var disarmCmd = &cobra.Command{
	Use:     "disarm",
	Short:   "Disarm a camera's recording schedule",
	Example: `  secspy disarm --num 0 --mode motion`,
	Run: func(cmd *cobra.Command, args []string) {
		setArm(false)
	},
}

func init() {
	rootCmd.AddCommand(armCmd)
	rootCmd.AddCommand(disarmCmd)

	for _, c := range []*cobra.Command{armCmd, disarmCmd} {
		c.Flags().StringVar(&armCameraNum, "num", "", "Camera number")
		c.Flags().StringVar(&armMode, "mode", "motion", "Recording mode: action, motion or continuous")
		_ = c.MarkFlagRequired("num")
	}
}
