//go:build cgo

package hid

import (
	"fmt"

	hidapi "github.com/sstallion/go-hid"
)

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := hidapi.Init(); err != nil {
		return nil, fmt.Errorf("hidapi init: %w", err)
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) List(vendorID, productID uint16) ([]Info, error) {
	var out []Info
	err := hidapi.Enumerate(vendorID, productID, func(info *hidapi.DeviceInfo) error {
		out = append(out, Info{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Product:      info.ProductStr,
			Manufacturer: info.MfrStr,
			SerialNumber: info.SerialNbr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *hidapiManager) Open(path string) (Device, error) {
	d, err := hidapi.OpenPath(path)
	if err != nil {
		return nil, err
	}
	if err := d.SetNonblocking(true); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("set non-blocking: %w", err)
	}
	return &hidapiDevice{d: d}, nil
}

func (m *hidapiManager) Close() error {
	return hidapi.Exit()
}

type hidapiDevice struct{ d *hidapi.Device }

// hidapi returns 0 from a non-blocking read when no report is pending,
// which is exactly the contract ReadReport wants.
func (d *hidapiDevice) ReadReport(p []byte) (int, error) {
	return d.d.Read(p)
}

func (d *hidapiDevice) GetFeatureReport(p []byte) (int, error) {
	return d.d.GetFeatureReport(p)
}

func (d *hidapiDevice) SendFeatureReport(p []byte) (int, error) {
	return d.d.SendFeatureReport(p)
}

func (d *hidapiDevice) Close() error { return d.d.Close() }
