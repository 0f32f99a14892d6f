package secspy

import (
	"context"
	"fmt"

	"github.com/briis/secspy/pkg/models"
)

// GetServerInfo returns the server record from /systemInfo, including
// the server-wide schedule presets.
func (c *Client) GetServerInfo(ctx context.Context) (*models.ServerInfo, error) {
	sys, err := c.systemInfo(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ServerInfo{
		Name:            sys.Server.Name,
		UUID:            sys.Server.UUID,
		Version:         sys.Server.Version,
		IPAddress:       sys.Server.IP,
		Port:            c.cfg.Port,
		SchedulePresets: sys.SchedulePresetList.Presets,
	}, nil
}

// GetCameras returns every camera the server knows about. Records are
// fetched fresh on each call; nothing is cached.
func (c *Client) GetCameras(ctx context.Context) ([]models.Camera, error) {
	sys, err := c.systemInfo(ctx)
	if err != nil {
		return nil, err
	}
	cameras := sys.CameraList.Cameras
	for i := range cameras {
		cameras[i].ServerUUID = sys.Server.UUID
	}
	return cameras, nil
}

// GetCamera returns the camera with the given number, or a
// *NotFoundError when the server does not list it.
func (c *Client) GetCamera(ctx context.Context, cameraNum string) (*models.Camera, error) {
	cameras, err := c.GetCameras(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cameras {
		if cameras[i].Number == cameraNum {
			return &cameras[i], nil
		}
	}
	return nil, &NotFoundError{Resource: fmt.Sprintf("camera %s", cameraNum)}
}

func (c *Client) systemInfo(ctx context.Context) (*models.SystemInfo, error) {
	resp, err := c.get(ctx, "/systemInfo", nil)
	if err != nil {
		return nil, err
	}
	var sys models.SystemInfo
	if err := decodeXML("/systemInfo", resp.Body(), &sys); err != nil {
		return nil, err
	}
	return &sys, nil
}
