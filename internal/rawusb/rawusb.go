// Package rawusb reads NOLO reports straight off the USB interrupt endpoint
// via github.com/karalabe/usb, bypassing the OS HID layer. It exists for
// diagnostics (nolotool dump) on hosts where the hidraw path is missing or
// claimed by another driver; the real driver lives in pkg/nolo.
package rawusb

import (
	"fmt"

	"github.com/karalabe/usb"
)

const reportSize = 64

// Device is a NOLO dongle opened as a plain USB HID endpoint pair.
type Device struct {
	dev usb.Device
}

// Open finds and opens the first device matching the VID/PID.
func Open(vendorID, productID uint16) (*Device, error) {
	infos, err := usb.Enumerate(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("device not found (VID:0x%04X PID:0x%04X)", vendorID, productID)
	}

	dev, err := infos[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}
	return &Device{dev: dev}, nil
}

// ReadReport blocks until one report arrives and returns it. Reports from
// the dongle are always reportSize bytes; shorter reads are returned as-is
// so the caller can see exactly what the endpoint delivered.
func (d *Device) ReadReport() ([]byte, error) {
	buf := make([]byte, reportSize)
	n, err := d.dev.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("usb read: %w", err)
	}
	return buf[:n], nil
}

// Close releases the device.
func (d *Device) Close() error {
	return d.dev.Close()
}
