package models

import "encoding/xml"

// RecordingMode names one of the camera's three arming schedules.
type RecordingMode string

const (
	RecordingModeAction     RecordingMode = "action"
	RecordingModeMotion     RecordingMode = "motion"
	RecordingModeContinuous RecordingMode = "continuous"
)

// Code returns the single-letter mode identifier the /setSchedule
// endpoint expects, or "" for an unknown mode.
func (m RecordingMode) Code() string {
	switch m {
	case RecordingModeAction:
		return "A"
	case RecordingModeMotion:
		return "M"
	case RecordingModeContinuous:
		return "C"
	}
	return ""
}

// DownloadFeed mirrors the Atom-style file listing returned by
// /download with format=xml.
type DownloadFeed struct {
	XMLName xml.Name        `xml:"feed"`
	Entries []DownloadEntry `xml:"entry"`
}

// DownloadEntry is a single capture file in the download feed.
type DownloadEntry struct {
	Title   string `xml:"title"`
	Updated string `xml:"updated"`
	Link    struct {
		Href string `xml:"href,attr"`
	} `xml:"link"`
}
