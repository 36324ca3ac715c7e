// Package nolo implements a host-side driver for the LYRobotix NOLO CV1
// tracking system: an HMD-mounted marker, two hand controllers and a base
// station, all streamed through a single USB HID dongle.
//
// The dongle packs several device records into each fixed 64-byte input
// report at fixed offsets, with no self-describing structure. The offsets
// and record lengths below are the externally observed wire contract and
// must be reproduced exactly.
package nolo

import "errors"

// VID/PID of the NOLO CV1 dongle (STMicroelectronics).
const (
	VendorID  uint16 = 0x0483
	ProductID uint16 = 0x5750
)

// Wire contract.
const (
	// reportSize is the fixed length of every input and feature report.
	reportSize = 64

	// controllerLength is the length of one controller record: 3-byte
	// header, (3 position + 4 quaternion) int16 components, button mask,
	// analog pad, state byte.
	controllerLength = 3 + (3+4)*2 + 2 + 2 + 1

	// A controllers report carries the primary record right after the tag
	// and the secondary record right-aligned to the end of the report.
	controller0Offset = 1
	controller1Offset = reportSize - controllerLength

	// An HMD report carries the headset marker record and the base station
	// record at fixed offsets.
	hmdMarkerOffset   = 0x15
	baseStationOffset = 0x36

	hmdMarkerLength   = 3 + (3+4)*2
	baseStationLength = 3 + 3*2 + 1
)

// Compile-time window checks: each constant underflows and fails the build
// if a window escapes the report or the two controller windows overlap.
const (
	_ = uint(controller1Offset - (controller0Offset + controllerLength))
	_ = uint(reportSize - (controller1Offset + controllerLength))
	_ = uint(baseStationOffset - (hmdMarkerOffset + hmdMarkerLength))
	_ = uint(reportSize - (baseStationOffset + baseStationLength))
)

// DeviceID identifies one tracked device within a driver instance.
type DeviceID int

const (
	HMD DeviceID = iota
	Controller0
	Controller1
	BaseStation

	numDevices
)

func (id DeviceID) String() string {
	switch id {
	case HMD:
		return "hmd"
	case Controller0:
		return "controller0"
	case Controller1:
		return "controller1"
	case BaseStation:
		return "basestation"
	}
	return "unknown"
}

// FloatValue selects which part of a device pose GetFloat copies out.
type FloatValue int

const (
	RotationQuat   FloatValue = iota // 4 floats: x, y, z, w
	PositionVector                   // 3 floats: x, y, z
)

// ErrUnsupportedValue is returned by GetFloat for any value kind other than
// RotationQuat or PositionVector.
var ErrUnsupportedValue = errors.New("nolo: unsupported float value kind")
