package nolo

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motionkit/nolo/pkg/hid"
)

func newTestDevice(m *hid.MockDevice) *Device {
	return &Device{handle: m, decoder: TrackingDecoder{}}
}

// controllersReport builds a 0xa5 report with the given controller records
// already placed in their windows.
func controllersReport(rec0, rec1 []byte) []byte {
	buf := make([]byte, reportSize)
	buf[0] = tagControllers
	copy(buf[controller0Offset:], rec0)
	copy(buf[controller1Offset:], rec1)
	return buf
}

func putPositionMM(rec []byte, x, y, z int16) {
	binary.LittleEndian.PutUint16(rec[3:5], uint16(x))
	binary.LittleEndian.PutUint16(rec[5:7], uint16(y))
	binary.LittleEndian.PutUint16(rec[7:9], uint16(z))
}

func putRotation(rec []byte, x, y, z, w int16) {
	binary.LittleEndian.PutUint16(rec[9:11], uint16(x))
	binary.LittleEndian.PutUint16(rec[11:13], uint16(y))
	binary.LittleEndian.PutUint16(rec[13:15], uint16(z))
	binary.LittleEndian.PutUint16(rec[15:17], uint16(w))
}

func TestPollEmptyQueue(t *testing.T) {
	m := hid.NewMockDevice()
	dev := newTestDevice(m)

	dev.Poll()

	assert.Equal(t, 1, m.Reads(), "an empty queue costs exactly one read")
	assert.Equal(t, State{}, dev.State(HMD))
	assert.Equal(t, State{}, dev.State(Controller0))
}

func TestPollDrainsQueue(t *testing.T) {
	m := hid.NewMockDevice()
	dev := newTestDevice(m)

	for i := 0; i < 3; i++ {
		m.Enqueue(controllersReport(make([]byte, controllerLength), make([]byte, controllerLength)))
	}
	dev.Poll()

	// Three queued reports plus the terminating zero-size read.
	assert.Equal(t, 4, m.Reads())
}

func TestPollReadError(t *testing.T) {
	m := hid.NewMockDevice()
	dev := newTestDevice(m)

	rec0 := make([]byte, controllerLength)
	putPositionMM(rec0, 500, 0, 0)
	m.Enqueue(controllersReport(rec0, make([]byte, controllerLength)))
	m.FailRead(errors.New("transport gone"))

	// The queued report is still processed; the error only ends the loop.
	dev.Poll()
	assert.InDelta(t, 0.5, dev.State(Controller0).Pose.Position.X, 1e-6)

	// A later Poll retries and hits the error again without panicking.
	dev.Poll()
}

func TestPollUnknownTagKeepsGoing(t *testing.T) {
	m := hid.NewMockDevice()
	dev := newTestDevice(m)

	junk := make([]byte, reportSize)
	junk[0] = 0xFF
	for i := 1; i < reportSize; i++ {
		junk[i] = 0x7F
	}
	m.Enqueue(junk)

	rec0 := make([]byte, controllerLength)
	putPositionMM(rec0, 1000, 0, 0)
	m.Enqueue(controllersReport(rec0, make([]byte, controllerLength)))

	dev.Poll()

	// Only the recognized report mutates state, and it is still processed
	// after the junk one.
	assert.InDelta(t, 1.0, dev.State(Controller0).Pose.Position.X, 1e-6)
	assert.Equal(t, State{}, dev.State(HMD))
	assert.Equal(t, State{}, dev.State(BaseStation))
	assert.Equal(t, 3, m.Reads())
}

func TestPollControllerWindowsIndependent(t *testing.T) {
	m := hid.NewMockDevice()
	dev := newTestDevice(m)

	rec0 := make([]byte, controllerLength)
	putPositionMM(rec0, 1000, 0, 0) // (1, 0, 0)
	rec1 := make([]byte, controllerLength)
	putPositionMM(rec1, 0, 1000, 0) // (0, 1, 0)

	m.Enqueue(controllersReport(rec0, rec1))
	dev.Poll()

	p0 := dev.State(Controller0).Pose.Position
	assert.InDelta(t, 1.0, p0.X, 1e-6)
	assert.InDelta(t, 0.0, p0.Y, 1e-6)
	assert.InDelta(t, 0.0, p0.Z, 1e-6)

	p1 := dev.State(Controller1).Pose.Position
	assert.InDelta(t, 0.0, p1.X, 1e-6)
	assert.InDelta(t, 1.0, p1.Y, 1e-6)
	assert.InDelta(t, 0.0, p1.Z, 1e-6)
}

func TestGetFloatRoundTrip(t *testing.T) {
	m := hid.NewMockDevice()
	dev := newTestDevice(m)

	rec0 := make([]byte, controllerLength)
	putPositionMM(rec0, 123, -456, 789)
	putRotation(rec0, 8192, -8192, 0, 16384)

	m.Enqueue(controllersReport(rec0, make([]byte, controllerLength)))
	dev.Poll()

	st := dev.State(Controller0)

	rot := make([]float32, 4)
	require.NoError(t, dev.GetFloat(Controller0, RotationQuat, rot))
	assert.Equal(t, []float32{st.Pose.Rotation.X, st.Pose.Rotation.Y, st.Pose.Rotation.Z, st.Pose.Rotation.W}, rot,
		"accessor output must be bit-identical to the decoded pose")
	assert.Equal(t, float32(1.0), rot[3])

	pos := make([]float32, 3)
	require.NoError(t, dev.GetFloat(Controller0, PositionVector, pos))
	assert.Equal(t, []float32{st.Pose.Position.X, st.Pose.Position.Y, st.Pose.Position.Z}, pos)
}

func TestGetFloatUnsupportedKind(t *testing.T) {
	dev := newTestDevice(hid.NewMockDevice())

	out := make([]float32, 4)
	err := dev.GetFloat(HMD, FloatValue(99), out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestGetFloatShortBuffer(t *testing.T) {
	dev := newTestDevice(hid.NewMockDevice())

	assert.Error(t, dev.GetFloat(HMD, RotationQuat, make([]float32, 3)))
	assert.Error(t, dev.GetFloat(HMD, PositionVector, make([]float32, 2)))
	assert.NoError(t, dev.GetFloat(HMD, PositionVector, make([]float32, 3)))
}

func TestGetFloatBadDevice(t *testing.T) {
	dev := newTestDevice(hid.NewMockDevice())

	assert.Error(t, dev.GetFloat(DeviceID(-1), RotationQuat, make([]float32, 4)))
	assert.Error(t, dev.GetFloat(numDevices, RotationQuat, make([]float32, 4)))
}

func TestFeatureReport(t *testing.T) {
	m := hid.NewMockDevice()
	dev := newTestDevice(m)

	m.SetFeature(0x40, []byte{0x01, 0x02, 0x03})
	resp, err := dev.FeatureReport(0x40)
	require.NoError(t, err)
	require.Len(t, resp, 4)
	assert.Equal(t, byte(0x40), resp[0])
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, resp[1:])

	n, err := dev.SendFeatureReport([]byte{0x40, 0xAA})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, m.Sent(), 1)
	assert.Equal(t, []byte{0x40, 0xAA}, m.Sent()[0])
}

func TestClose(t *testing.T) {
	m := hid.NewMockDevice()
	dev := newTestDevice(m)

	require.NoError(t, dev.Close())
	assert.True(t, m.Closed())
}
