package hid

// Device represents an opened HID device capable of report I/O.
//
// ReadReport is non-blocking: it returns (n, nil) with n > 0 when a report
// was pending, (0, nil) when the queue is empty, and a non-nil error when
// the transport failed. Feature report exchanges follow hidapi semantics:
// byte 0 of the buffer is the report ID (or command byte for devices that
// overload it), the remainder is the payload.
type Device interface {
	ReadReport(p []byte) (int, error)
	GetFeatureReport(p []byte) (int, error)
	SendFeatureReport(p []byte) (int, error)
	Close() error
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
	SerialNumber string
}

// Manager enumerates and opens HID devices. Close releases any state the
// underlying HID library holds; opened Devices must be closed first.
type Manager interface {
	List(vendorID, productID uint16) ([]Info, error)
	Open(path string) (Device, error)
	Close() error
}

// NewManager returns the backend selected at build time: hidapi when cgo is
// available, a pure Go hidraw implementation otherwise.
func NewManager() (Manager, error) {
	return newManager()
}
