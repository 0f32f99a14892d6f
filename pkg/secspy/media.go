package secspy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/briis/secspy/pkg/models"
)

// SnapshotOptions control the JPEG returned by GetSnapshot. Zero values
// fall back to 1920x1080 at quality 75.
type SnapshotOptions struct {
	Width   int
	Height  int
	Quality int
}

// GetSnapshot downloads a JPEG still from the camera.
func (c *Client) GetSnapshot(ctx context.Context, cameraNum string, opts SnapshotOptions) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = 1920
	}
	if opts.Height <= 0 {
		opts.Height = 1080
	}
	if opts.Quality <= 0 {
		opts.Quality = 75
	}

	resp, err := c.get(ctx, "/image", map[string]string{
		"cameraNum": cameraNum,
		"width":     strconv.Itoa(opts.Width),
		"height":    strconv.Itoa(opts.Height),
		"quality":   strconv.Itoa(opts.Quality),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Body()) == 0 {
		return nil, &ParseError{Endpoint: "/image", Err: errors.New("empty image body")}
	}
	return resp.Body(), nil
}

// GetLatestMotionRecording resolves the newest capture file for the
// camera through the /download feed and downloads it.
func (c *Client) GetLatestMotionRecording(ctx context.Context, cameraNum string) ([]byte, error) {
	resp, err := c.get(ctx, "/download", map[string]string{
		"cameraNum":    cameraNum,
		"mcFilesCheck": "1",
		"ageText":      "1",
		"results":      "1",
		"format":       "xml",
	})
	if err != nil {
		return nil, err
	}

	var feed models.DownloadFeed
	if err := decodeXML("/download", resp.Body(), &feed); err != nil {
		return nil, err
	}
	if len(feed.Entries) == 0 || feed.Entries[0].Link.Href == "" {
		return nil, &NotFoundError{Resource: fmt.Sprintf("recording for camera %s", cameraNum)}
	}

	href := "/" + strings.TrimPrefix(feed.Entries[0].Link.Href, "/")
	file, err := c.get(ctx, href, nil)
	if err != nil {
		return nil, err
	}
	return file.Body(), nil
}
