package cmd

import (
	"fmt"
	"log/slog"

	"github.com/motionkit/nolo/pkg/nolo"
)

// List prints every connected NOLO dongle.
type List struct{}

func (l *List) Run(logger *slog.Logger) error {
	drv, err := nolo.New()
	if err != nil {
		return err
	}
	defer drv.Close()

	descs, err := drv.List()
	if err != nil {
		return err
	}
	if len(descs) == 0 {
		logger.Info("no devices found",
			slog.String("vid", fmt.Sprintf("0x%04X", nolo.VendorID)),
			slog.String("pid", fmt.Sprintf("0x%04X", nolo.ProductID)))
		return nil
	}
	for _, d := range descs {
		fmt.Printf("%s\t%s %s\t%s\n", d.Path, d.Vendor, d.Product, d.Driver)
	}
	return nil
}
