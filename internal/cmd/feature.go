package cmd

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/motionkit/nolo/pkg/nolo"
)

// Feature exchanges a single feature report with the dongle: with --send it
// writes the given bytes, otherwise it requests the report for --cmd and
// prints the response.
type Feature struct {
	Path string `help:"Transport path of the dongle; defaults to the first one found." env:"NOLO_PATH"`
	Cmd  uint8  `help:"Feature report command byte to request." default:"0"`
	Send string `help:"Hex bytes to send as a feature report instead of requesting one."`
}

func (f *Feature) Run(logger *slog.Logger) error {
	drv, err := nolo.New()
	if err != nil {
		return err
	}
	defer drv.Close()

	dev, err := f.open(drv)
	if err != nil {
		return err
	}
	defer dev.Close()

	if f.Send != "" {
		data, err := hex.DecodeString(strings.ReplaceAll(f.Send, "-", ""))
		if err != nil {
			return fmt.Errorf("bad --send payload: %w", err)
		}
		n, err := dev.SendFeatureReport(data)
		if err != nil {
			return err
		}
		logger.Info("feature report sent", slog.Int("bytes", n))
		return nil
	}

	resp, err := dev.FeatureReport(f.Cmd)
	if err != nil {
		return err
	}
	fmt.Println(reportString(resp))
	return nil
}

func (f *Feature) open(drv *nolo.Driver) (*nolo.Device, error) {
	if f.Path != "" {
		return drv.Open(f.Path)
	}
	return drv.OpenFirst()
}
