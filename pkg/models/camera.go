package models

import (
	"encoding/xml"
	"strings"
)

// YesNo decodes SecuritySpy's "yes"/"no" boolean encoding.
type YesNo bool

func (b *YesNo) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	*b = YesNo(strings.EqualFold(strings.TrimSpace(s), "yes"))
	return nil
}

// PTZCapability is the camera's PTZ capability bitmask as reported in
// the /systemInfo camera element.
type PTZCapability int

const (
	CapabilityPanTilt PTZCapability = 1 << iota
	CapabilityZoom
	CapabilityHome
	CapabilityPresets
)

// Has reports whether the given capability bit is set.
func (p PTZCapability) Has(c PTZCapability) bool {
	return p&c != 0
}

func (p PTZCapability) String() string {
	if p == 0 {
		return "none"
	}
	var names []string
	if p.Has(CapabilityPanTilt) {
		names = append(names, "pan/tilt")
	}
	if p.Has(CapabilityZoom) {
		names = append(names, "zoom")
	}
	if p.Has(CapabilityHome) {
		names = append(names, "home")
	}
	if p.Has(CapabilityPresets) {
		names = append(names, "presets")
	}
	return strings.Join(names, ",")
}

// PTZPreset is a saved PTZ position a camera can be commanded to move to.
type PTZPreset struct {
	Index int    `xml:"index,attr" json:"index"`
	Name  string `xml:",chardata" json:"name"`
}

// Camera is a single entry from the /systemInfo camera list.
type Camera struct {
	Number          string        `xml:"number" json:"number"`
	Name            string        `xml:"name" json:"name"`
	Connected       YesNo         `xml:"connected" json:"connected"`
	DeviceName      string        `xml:"devicename" json:"deviceName"`
	DeviceType      string        `xml:"devicetype" json:"deviceType"`
	Address         string        `xml:"address" json:"address"`
	Width           int           `xml:"width" json:"width"`
	Height          int           `xml:"height" json:"height"`
	ModeAction      YesNo         `xml:"mode-a" json:"modeAction"`
	ModeContinuous  YesNo         `xml:"mode-c" json:"modeContinuous"`
	ModeMotion      YesNo         `xml:"mode-m" json:"modeMotion"`
	PTZCapabilities PTZCapability `xml:"ptzcapabilities" json:"ptzCapabilities"`
	PTZPresets      []PTZPreset   `xml:"ptzpresetlist>ptzpreset" json:"ptzPresets,omitempty"`

	// ServerUUID is filled in by the client from the enclosing document.
	ServerUUID string `xml:"-" json:"serverId"`
}

// Online reports whether the server currently has a connection to the camera.
func (c Camera) Online() bool {
	return bool(c.Connected)
}

// HasPTZ reports whether the camera is mechanically positionable at all.
func (c Camera) HasPTZ() bool {
	return c.PTZCapabilities != 0
}

// Armed reports whether the given recording mode's schedule is active.
func (c Camera) Armed(mode RecordingMode) bool {
	switch mode {
	case RecordingModeAction:
		return bool(c.ModeAction)
	case RecordingModeContinuous:
		return bool(c.ModeContinuous)
	case RecordingModeMotion:
		return bool(c.ModeMotion)
	}
	return false
}

// SystemInfo mirrors the /systemInfo XML document.
type SystemInfo struct {
	XMLName    xml.Name `xml:"system"`
	Server     Server   `xml:"server"`
	CameraList struct {
		Cameras []Camera `xml:"camera"`
	} `xml:"cameralist"`
	SchedulePresetList struct {
		Presets []SchedulePreset `xml:"schedulepreset"`
	} `xml:"schedulepresetlist"`
}
