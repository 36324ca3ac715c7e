package nolo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/motionkit/nolo/pkg/hid"
)

// Descriptor describes one discovered NOLO dongle.
type Descriptor struct {
	Driver  string
	Vendor  string
	Product string
	Path    string
}

// ErrNoDevice is returned by OpenFirst when enumeration finds no dongle.
var ErrNoDevice = errors.New("nolo: no device found")

// Driver discovers and opens NOLO devices over a HID transport backend.
type Driver struct {
	mgr     hid.Manager
	decoder Decoder
}

// Option configures a Driver.
type Option func(*Driver)

// WithDecoder replaces the default TrackingDecoder; used by hosts that do
// their own record decoding (and by tests).
func WithDecoder(dec Decoder) Option {
	return func(d *Driver) { d.decoder = dec }
}

// NewDriver builds a Driver on top of an opened HID manager.
func NewDriver(mgr hid.Manager, opts ...Option) *Driver {
	d := &Driver{mgr: mgr, decoder: TrackingDecoder{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// New builds a Driver on the default HID backend for this platform.
func New(opts ...Option) (*Driver, error) {
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, err
	}
	return NewDriver(mgr, opts...), nil
}

// List enumerates connected NOLO dongles.
func (d *Driver) List() ([]Descriptor, error) {
	infos, err := d.mgr.List(VendorID, ProductID)
	if err != nil {
		return nil, fmt.Errorf("enumerate: %w", err)
	}
	out := make([]Descriptor, 0, len(infos))
	for _, info := range infos {
		out = append(out, Descriptor{
			Driver:  "NOLO CV1 driver",
			Vendor:  "LYRobotix",
			Product: "NOLO CV1",
			Path:    info.Path,
		})
	}
	return out, nil
}

// Open opens the dongle at the given transport path. Poses start at their
// zero values until the first report is decoded.
func (d *Driver) Open(path string) (*Device, error) {
	handle, err := d.mgr.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s (check your permissions): %w", unixDevicePath(path), err)
	}
	return &Device{handle: handle, decoder: d.decoder}, nil
}

// OpenFirst opens the first dongle enumeration finds.
func (d *Driver) OpenFirst() (*Device, error) {
	descs, err := d.List()
	if err != nil {
		return nil, err
	}
	if len(descs) == 0 {
		return nil, ErrNoDevice
	}
	return d.Open(descs[0].Path)
}

// Close releases the HID backend. Opened devices must be closed first.
func (d *Driver) Close() error {
	return d.mgr.Close()
}

// unixDevicePath maps a hidapi "bus:device:interface" hex path to the
// /dev/bus/usb node it corresponds to, so permission errors point the user
// at a file they can chmod. Paths in any other shape pass through untouched.
func unixDevicePath(path string) string {
	parts := strings.Split(path, ":")
	if len(parts) < 2 {
		return path
	}
	bus, err1 := strconv.ParseInt(parts[0], 16, 32)
	dev, err2 := strconv.ParseInt(parts[1], 16, 32)
	if err1 != nil || err2 != nil {
		return path
	}
	return fmt.Sprintf("/dev/bus/usb/%03d/%03d", bus, dev)
}
