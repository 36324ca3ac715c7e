//go:build !cgo

package hid

import (
	"fmt"
	"sync"

	usbhid "rafaelmartins.com/p/usbhid"
)

type usbManager struct{}

func newManager() (Manager, error) { return &usbManager{}, nil }

func (m *usbManager) List(vendorID, productID uint16) ([]Info, error) {
	devs, err := usbhid.Enumerate(func(d *usbhid.Device) bool {
		return d.VendorId() == vendorID && d.ProductId() == productID
	})
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

func (m *usbManager) Open(path string) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == path
	}, true, false)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	u := &usbDevice{
		d:       d,
		reports: make(chan []byte, 16),
		done:    make(chan struct{}),
	}
	go u.pump()
	return u, nil
}

func (m *usbManager) Close() error { return nil }

// usbDevice adapts usbhid's blocking GetInputReport to the non-blocking
// ReadReport contract: a pump goroutine drains the device into a buffered
// channel and ReadReport polls that channel.
type usbDevice struct {
	d       *usbhid.Device
	reports chan []byte
	done    chan struct{}

	mu      sync.Mutex
	pumpErr error
}

func (u *usbDevice) pump() {
	for {
		_, buf, err := u.d.GetInputReport()
		if err != nil {
			u.mu.Lock()
			u.pumpErr = err
			u.mu.Unlock()
			return
		}
		rec := make([]byte, len(buf))
		copy(rec, buf)
		select {
		case u.reports <- rec:
		case <-u.done:
			return
		}
	}
}

func (u *usbDevice) ReadReport(p []byte) (int, error) {
	select {
	case rec := <-u.reports:
		return copy(p, rec), nil
	default:
	}
	u.mu.Lock()
	err := u.pumpErr
	u.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return 0, nil
}

func (u *usbDevice) GetFeatureReport(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	buf, err := u.d.GetFeatureReport(p[0])
	if err != nil {
		return 0, err
	}
	return copy(p[1:], buf) + 1, nil
}

func (u *usbDevice) SendFeatureReport(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := u.d.SetFeatureReport(p[0], p[1:]); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (u *usbDevice) Close() error {
	close(u.done)
	return u.d.Close()
}
