// Command cablecam-host is the ground-station tool for a cablecam rig:
// it opens the diagnostic serial link, renders incoming trace/status
// frames, and serves an HTTP status endpoint and an interactive REPL.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/theckman/yacspin"

	"cablecam/hostlink"
)

var (
	device   = pflag.String("device", "/dev/ttyACM0", "serial device for the diagnostic link")
	baud     = pflag.Int("baud", 115200, "baud rate")
	httpAddr = pflag.String("http", ":8980", "address for the status HTTP endpoint")
)

func main() {
	pflag.Parse()

	color.Cyan("cablecam-host — cablecam ground station")

	spinner, _ := yacspin.New(yacspin.Config{
		Frequency:       100_000_000, // 100ms
		CharSet:         yacspin.CharSets[11],
		Suffix:          fmt.Sprintf(" connecting to %s", *device),
		SuffixAutoColon: true,
	})
	_ = spinner.Start()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := hostlink.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := hostlink.Dial(ctx, cfg)
	if err != nil {
		_ = spinner.StopFail()
		color.Red("failed to connect: %v", err)
		os.Exit(1)
	}
	_ = spinner.Stop()
	color.Green("connected to %s", *device)

	status := newStatusServer()
	go func() {
		if err := status.ListenAndServe(*httpAddr); err != nil {
			color.Yellow("status server stopped: %v", err)
		}
	}()

	go readFrames(ctx, port, status)

	runREPL(ctx, bufio.NewScanner(os.Stdin), status)
}
