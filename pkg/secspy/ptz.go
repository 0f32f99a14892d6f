package secspy

import (
	"context"
	"fmt"
	"strconv"

	"github.com/briis/secspy/pkg/models"
)

// Direction is a continuous PTZ movement command. The values match the
// /ptz endpoint's command numbers.
type Direction int

const (
	DirectionLeft Direction = iota + 1
	DirectionRight
	DirectionUp
	DirectionDown
	DirectionZoomIn
	DirectionZoomOut
	DirectionHome
)

// /ptz command numbers beyond plain movement. Preset n maps to command
// presetBase+n; saving the current position maps to savePresetBase+n.
const (
	ptzCommandStop    = 0
	ptzPresetBase     = 11
	ptzSavePresetBase = 111
	maxPreset         = 12
)

// PTZCapabilities reports the camera's PTZ capability bitmask.
func (c *Client) PTZCapabilities(ctx context.Context, cameraNum string) (models.PTZCapability, error) {
	cam, err := c.GetCamera(ctx, cameraNum)
	if err != nil {
		return 0, err
	}
	return cam.PTZCapabilities, nil
}

// PTZPresets reports the camera's saved preset positions.
func (c *Client) PTZPresets(ctx context.Context, cameraNum string) ([]models.PTZPreset, error) {
	cam, err := c.GetCamera(ctx, cameraNum)
	if err != nil {
		return nil, err
	}
	return cam.PTZPresets, nil
}

// GotoPreset moves the camera to a saved preset position (1-12).
func (c *Client) GotoPreset(ctx context.Context, cameraNum string, preset int) error {
	if preset < 1 || preset > maxPreset {
		return fmt.Errorf("secspy: preset %d out of range 1-%d", preset, maxPreset)
	}
	return c.ptz(ctx, cameraNum, ptzPresetBase+preset)
}

// SavePreset stores the camera's current position as a preset (1-12).
func (c *Client) SavePreset(ctx context.Context, cameraNum string, preset int) error {
	if preset < 1 || preset > maxPreset {
		return fmt.Errorf("secspy: preset %d out of range 1-%d", preset, maxPreset)
	}
	return c.ptz(ctx, cameraNum, ptzSavePresetBase+preset)
}

// PTZMove starts a continuous movement in the given direction. The
// camera keeps moving until PTZStop is called.
func (c *Client) PTZMove(ctx context.Context, cameraNum string, dir Direction) error {
	if dir < DirectionLeft || dir > DirectionHome {
		return fmt.Errorf("secspy: unknown PTZ direction %d", dir)
	}
	return c.ptz(ctx, cameraNum, int(dir))
}

// PTZStop ends a continuous movement.
func (c *Client) PTZStop(ctx context.Context, cameraNum string) error {
	return c.ptz(ctx, cameraNum, ptzCommandStop)
}

func (c *Client) ptz(ctx context.Context, cameraNum string, command int) error {
	_, err := c.get(ctx, "/ptz", map[string]string{
		"cameraNum": cameraNum,
		"command":   strconv.Itoa(command),
	})
	return err
}
