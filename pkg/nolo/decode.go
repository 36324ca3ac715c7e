package nolo

import (
	"encoding/binary"
)

// Vec3 is a position in metres.
type Vec3 struct {
	X, Y, Z float32
}

// Quat is a rotation quaternion.
type Quat struct {
	X, Y, Z, W float32
}

// Pose is a device's current rotation and position. Each decoded record
// overwrites the previous pose; no history is kept.
type Pose struct {
	Rotation Quat
	Position Vec3
}

// State is everything the driver tracks for one device. Buttons, Analog and
// Battery are only populated for controllers.
type State struct {
	Pose    Pose
	Buttons uint16
	Analog  uint16
	Battery byte
}

// Decoder consumes one correctly sized device record and updates that
// device's state in place. Implementations may leave the state untouched for
// records they recognize but choose to ignore.
type Decoder interface {
	Decode(id DeviceID, rec []byte, st *State)
}

// Record scaling: positions are int16 millimetres, quaternion components are
// int16 in 1/16384 units.
const (
	positionScale = 1.0 / 1000.0
	rotationScale = 1.0 / 16384.0
)

// TrackingDecoder decodes the CV1 record layouts.
//
// Controller (22 bytes): header[3] (hw version, sequence, battery), position
// int16[3], quaternion int16[4], button mask uint16, analog pad uint16,
// state byte. HMD marker (17 bytes): header[3], position int16[3],
// quaternion int16[4]. Base station (10 bytes): header[3], position
// int16[3], status byte. All fields little endian.
type TrackingDecoder struct{}

func (TrackingDecoder) Decode(id DeviceID, rec []byte, st *State) {
	switch id {
	case Controller0, Controller1:
		if len(rec) < controllerLength {
			return
		}
		st.Battery = rec[2]
		st.Pose.Position = decodePosition(rec[3:9])
		st.Pose.Rotation = decodeRotation(rec[9:17])
		st.Buttons = binary.LittleEndian.Uint16(rec[17:19])
		st.Analog = binary.LittleEndian.Uint16(rec[19:21])

	case HMD:
		if len(rec) < hmdMarkerLength {
			return
		}
		st.Pose.Position = decodePosition(rec[3:9])
		st.Pose.Rotation = decodeRotation(rec[9:17])

	case BaseStation:
		if len(rec) < baseStationLength {
			return
		}
		st.Pose.Position = decodePosition(rec[3:9])
	}
}

func decodePosition(b []byte) Vec3 {
	return Vec3{
		X: float32(int16(binary.LittleEndian.Uint16(b[0:2]))) * positionScale,
		Y: float32(int16(binary.LittleEndian.Uint16(b[2:4]))) * positionScale,
		Z: float32(int16(binary.LittleEndian.Uint16(b[4:6]))) * positionScale,
	}
}

func decodeRotation(b []byte) Quat {
	return Quat{
		X: float32(int16(binary.LittleEndian.Uint16(b[0:2]))) * rotationScale,
		Y: float32(int16(binary.LittleEndian.Uint16(b[2:4]))) * rotationScale,
		Z: float32(int16(binary.LittleEndian.Uint16(b[4:6]))) * rotationScale,
		W: float32(int16(binary.LittleEndian.Uint16(b[6:8]))) * rotationScale,
	}
}
