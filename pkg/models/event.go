package models

import "time"

// EventType classifies a line from the SecuritySpy event stream.
type EventType string

const (
	EventMotion    EventType = "motion"
	EventMotionEnd EventType = "motion_end"
	EventOnline    EventType = "online"
	EventOffline   EventType = "offline"
	EventArmed     EventType = "armed"
	EventDisarmed  EventType = "disarmed"
	EventFile      EventType = "file"
)

// ObjectType is the classification SecuritySpy assigns to detected motion.
// The zero value means no object was detected.
type ObjectType string

const (
	ObjectNone    ObjectType = ""
	ObjectHuman   ObjectType = "human"
	ObjectVehicle ObjectType = "vehicle"
)

// Trigger reason bitmask values reported on TRIGGER_M lines.
const (
	ReasonHuman   = 128
	ReasonVehicle = 256
)

// Event is one camera or motion notification from the event stream.
// Events are handed to the caller as they arrive and are not retained
// by the library.
type Event struct {
	// Sequence is the server's monotonically increasing event number,
	// or -1 when the line carried none.
	Sequence     int64         `json:"sequence"`
	CameraNumber string        `json:"cameraNumber"`
	Timestamp    time.Time     `json:"timestamp"`
	Type         EventType     `json:"type"`
	Mode         RecordingMode `json:"mode,omitempty"` // set on armed/disarmed events
	Reason       int           `json:"reason,omitempty"`
	HumanScore   int           `json:"humanScore,omitempty"`
	VehicleScore int           `json:"vehicleScore,omitempty"`
	Object       ObjectType    `json:"object,omitempty"`
	FilePath     string        `json:"filePath,omitempty"` // set on file events
}

// BestObject selects the detected object with the highest confidence
// score. Scores below minScore count as no detection, and with neither
// score above the floor the result is ObjectNone. The human
// classification wins ties.
func BestObject(humanScore, vehicleScore, minScore int) ObjectType {
	if humanScore < minScore && vehicleScore < minScore {
		return ObjectNone
	}
	if humanScore >= vehicleScore {
		return ObjectHuman
	}
	return ObjectVehicle
}

// ObjectFromReason maps the trigger reason bitmask to a detected object.
func ObjectFromReason(reason int) ObjectType {
	switch {
	case reason&ReasonHuman != 0:
		return ObjectHuman
	case reason&ReasonVehicle != 0:
		return ObjectVehicle
	default:
		return ObjectNone
	}
}
