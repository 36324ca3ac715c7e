package nolo

import (
	"fmt"
	"log/slog"

	"github.com/motionkit/nolo/pkg/hid"
)

// Device is one opened NOLO dongle and the tracked state behind it. It is
// not safe for concurrent use: Poll and the accessors are expected to run on
// the same goroutine (the host's per-frame update), anything else needs
// external synchronization.
type Device struct {
	handle  hid.Device
	decoder Decoder
	states  [numDevices]State
}

// Poll drains every queued report from the dongle and folds each one into
// the device states. It returns once the transport reports an empty queue;
// a read failure is logged and ends this invocation only, the next Poll
// simply retries.
func (d *Device) Poll() {
	var buf [reportSize]byte
	for {
		size, err := d.handle.ReadReport(buf[:])
		if err != nil {
			slog.Error("error reading from device", slog.Any("error", err))
			return
		}
		if size == 0 {
			return // queue drained
		}
		d.dispatch(buf[:size])
	}
}

// GetFloat copies the requested component of a device's pose into out:
// 4 floats (x, y, z, w) for RotationQuat, 3 floats (x, y, z) for
// PositionVector. Any other kind fails with ErrUnsupportedValue.
func (d *Device) GetFloat(id DeviceID, kind FloatValue, out []float32) error {
	if id < 0 || id >= numDevices {
		return fmt.Errorf("nolo: no such device %d", id)
	}
	pose := d.states[id].Pose

	switch kind {
	case RotationQuat:
		if len(out) < 4 {
			return fmt.Errorf("nolo: need 4 floats for rotation, got %d", len(out))
		}
		out[0], out[1], out[2], out[3] = pose.Rotation.X, pose.Rotation.Y, pose.Rotation.Z, pose.Rotation.W

	case PositionVector:
		if len(out) < 3 {
			return fmt.Errorf("nolo: need 3 floats for position, got %d", len(out))
		}
		out[0], out[1], out[2] = pose.Position.X, pose.Position.Y, pose.Position.Z

	default:
		return fmt.Errorf("%w (%d)", ErrUnsupportedValue, kind)
	}

	return nil
}

// State returns a snapshot of one device's tracked state.
func (d *Device) State(id DeviceID) State {
	if id < 0 || id >= numDevices {
		return State{}
	}
	return d.states[id]
}

// FeatureReport exchanges one feature report with the dongle: a zeroed
// 64-byte buffer with the command in byte 0 is sent down, the device's
// response comes back in the same buffer.
func (d *Device) FeatureReport(cmd byte) ([]byte, error) {
	buf := make([]byte, reportSize)
	buf[0] = cmd
	n, err := d.handle.GetFeatureReport(buf)
	if err != nil {
		return nil, fmt.Errorf("get feature report 0x%02x: %w", cmd, err)
	}
	return buf[:n], nil
}

// SendFeatureReport writes a raw feature report to the dongle.
func (d *Device) SendFeatureReport(data []byte) (int, error) {
	return d.handle.SendFeatureReport(data)
}

// Close releases the transport handle.
func (d *Device) Close() error {
	slog.Debug("closing device")
	return d.handle.Close()
}
