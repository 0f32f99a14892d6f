package models

// Server is the <server> block of the /systemInfo document.
type Server struct {
	Name    string `xml:"server-name" json:"name"`
	UUID    string `xml:"uuid" json:"uuid"`
	Version string `xml:"version" json:"version"`
	IP      string `xml:"ip1" json:"ipAddress"`
}

// SchedulePreset is a server-wide arming preset that can be activated
// with /setPreset.
type SchedulePreset struct {
	ID   string `xml:"id" json:"id"`
	Name string `xml:"name" json:"name"`
}

// ServerInfo is the processed server record returned by the client.
type ServerInfo struct {
	Name            string           `json:"name"`
	UUID            string           `json:"uuid"`
	Version         string           `json:"version"`
	IPAddress       string           `json:"ipAddress"`
	Port            int              `json:"port"`
	SchedulePresets []SchedulePreset `json:"schedulePresets,omitempty"`
}
