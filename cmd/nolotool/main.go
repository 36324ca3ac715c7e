package main

import (
	"github.com/motionkit/nolo/internal/cmd"
	"github.com/motionkit/nolo/internal/logging"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
)

type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" env:"NOLO_LOG_LEVEL"`

	List    cmd.List    `cmd:"" help:"List connected NOLO dongles."`
	Watch   cmd.Watch   `cmd:"" help:"Poll tracking data and print device poses."`
	Dump    cmd.Dump    `cmd:"" help:"Hexdump raw reports over the low-level USB transport."`
	Feature cmd.Feature `cmd:"" help:"Exchange a feature report with the dongle."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("nolotool"),
		kong.Description("Diagnostics for the NOLO CV1 tracking driver."),
		kong.UsageOnError(),
		// Flags and env override values loaded from config files.
		kong.Configuration(kongyaml.Loader, "/etc/nolotool.yaml", "~/.config/nolotool/config.yaml"),
	)

	logger := logging.Setup(cli.LogLevel)
	ctx.Bind(logger)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
