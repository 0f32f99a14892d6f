package secspy

import (
	"context"
	"fmt"

	"github.com/briis/secspy/pkg/models"
)

// SetArmMode arms or disarms one of the camera's recording schedules.
// Mode is one of models.RecordingModeAction, RecordingModeMotion or
// RecordingModeContinuous.
func (c *Client) SetArmMode(ctx context.Context, cameraNum string, mode models.RecordingMode, enabled bool) error {
	code := mode.Code()
	if code == "" {
		return fmt.Errorf("secspy: unknown recording mode %q", mode)
	}

	schedule := "0"
	if enabled {
		schedule = "1"
	}

	_, err := c.get(ctx, "/setSchedule", map[string]string{
		"cameraNum": cameraNum,
		"schedule":  schedule,
		"override":  "0",
		"mode":      code,
	})
	return err
}

// EnableSchedulePreset activates a server-wide schedule preset by its ID.
func (c *Client) EnableSchedulePreset(ctx context.Context, presetID string) error {
	_, err := c.get(ctx, "/setPreset", map[string]string{"id": presetID})
	return err
}
