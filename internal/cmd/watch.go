package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/motionkit/nolo/pkg/nolo"
)

// Watch polls the dongle once per tick and prints the tracked poses.
type Watch struct {
	Path     string        `help:"Transport path of the dongle; defaults to the first one found." env:"NOLO_PATH"`
	Interval time.Duration `help:"Polling interval." default:"10ms" env:"NOLO_POLL_INTERVAL"`
}

func (w *Watch) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	drv, err := nolo.New()
	if err != nil {
		return err
	}
	defer drv.Close()

	dev, err := w.open(drv)
	if err != nil {
		return err
	}
	defer dev.Close()

	logger.Info("polling", slog.Duration("interval", w.Interval))

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			dev.Poll()
			printPoses(dev)
		}
	}
}

func (w *Watch) open(drv *nolo.Driver) (*nolo.Device, error) {
	if w.Path != "" {
		return drv.Open(w.Path)
	}
	return drv.OpenFirst()
}

func printPoses(dev *nolo.Device) {
	for _, id := range []nolo.DeviceID{nolo.HMD, nolo.Controller0, nolo.Controller1, nolo.BaseStation} {
		st := dev.State(id)
		p, r := st.Pose.Position, st.Pose.Rotation
		fmt.Printf("%-12s pos=(%+.3f %+.3f %+.3f) rot=(%+.4f %+.4f %+.4f %+.4f)",
			id, p.X, p.Y, p.Z, r.X, r.Y, r.Z, r.W)
		if id == nolo.Controller0 || id == nolo.Controller1 {
			fmt.Printf(" buttons=%04x battery=%d", st.Buttons, st.Battery)
		}
		fmt.Println()
	}
	fmt.Println()
}
