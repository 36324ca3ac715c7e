package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/motionkit/nolo/internal/rawusb"
	"github.com/motionkit/nolo/pkg/nolo"
)

// Dump reads raw reports over the low-level USB transport and hexdumps
// them, bypassing the OS HID layer. Useful when the hidraw node is missing
// or claimed by something else.
type Dump struct {
	Count int `help:"Number of reports to dump; 0 runs until interrupted." default:"0"`
}

func (d *Dump) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	dev, err := rawusb.Open(nolo.VendorID, nolo.ProductID)
	if err != nil {
		return err
	}
	defer dev.Close()

	logger.Info("dumping raw reports")

	for n := 0; d.Count == 0 || n < d.Count; n++ {
		if ctx.Err() != nil {
			return nil
		}
		report, err := dev.ReadReport()
		if err != nil {
			return err
		}
		fmt.Println(reportString(report))
	}
	return nil
}

// reportString renders a report as dash-separated hex byte pairs.
func reportString(b []byte) string {
	hexDigits := hex.EncodeToString(b)
	var builder strings.Builder
	for i, r := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
