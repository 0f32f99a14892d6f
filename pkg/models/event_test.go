package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestObject(t *testing.T) {
	tests := []struct {
		name     string
		human    int
		vehicle  int
		minScore int
		want     ObjectType
	}{
		{name: "both absent", human: 0, vehicle: 0, minScore: 50, want: ObjectNone},
		{name: "both below floor", human: 30, vehicle: 49, minScore: 50, want: ObjectNone},
		{name: "human wins", human: 90, vehicle: 40, minScore: 50, want: ObjectHuman},
		{name: "vehicle wins", human: 40, vehicle: 90, minScore: 50, want: ObjectVehicle},
		{name: "both above floor human higher", human: 80, vehicle: 70, minScore: 50, want: ObjectHuman},
		{name: "both above floor vehicle higher", human: 70, vehicle: 80, minScore: 50, want: ObjectVehicle},
		{name: "tie prefers human", human: 75, vehicle: 75, minScore: 50, want: ObjectHuman},
		{name: "exactly at floor", human: 50, vehicle: 0, minScore: 50, want: ObjectHuman},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BestObject(tt.human, tt.vehicle, tt.minScore))
		})
	}
}

func TestBestObjectNoneIsZeroValue(t *testing.T) {
	// The no-detection result must be the type's zero value, never a
	// non-empty placeholder.
	assert.Equal(t, ObjectType(""), BestObject(0, 0, 50))
	assert.Equal(t, ObjectNone, BestObject(0, 0, 50))
}

func TestObjectFromReason(t *testing.T) {
	assert.Equal(t, ObjectHuman, ObjectFromReason(ReasonHuman))
	assert.Equal(t, ObjectVehicle, ObjectFromReason(ReasonVehicle))
	// Combined bitmask resolves to human.
	assert.Equal(t, ObjectHuman, ObjectFromReason(ReasonHuman|ReasonVehicle))
	assert.Equal(t, ObjectNone, ObjectFromReason(0))
	assert.Equal(t, ObjectNone, ObjectFromReason(4))
}

func TestRecordingModeCode(t *testing.T) {
	assert.Equal(t, "A", RecordingModeAction.Code())
	assert.Equal(t, "M", RecordingModeMotion.Code())
	assert.Equal(t, "C", RecordingModeContinuous.Code())
	assert.Equal(t, "", RecordingMode("bogus").Code())
}
