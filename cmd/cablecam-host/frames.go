package main

import (
	"bufio"
	"context"
	"encoding/json"

	"github.com/fatih/color"

	"cablecam/hostlink"
)

// readFrames drains trace/status frames off the serial link and feeds the
// last-known values into status for the HTTP endpoint and REPL to read.
func readFrames(ctx context.Context, port hostlink.Port, status *statusServer) {
	r := bufio.NewReader(port)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		payload, err := hostlink.ReadFrame(r)
		if err != nil {
			color.Yellow("frame error: %v", err)
			continue
		}

		var snapshot map[string]any
		if err := json.Unmarshal(payload, &snapshot); err != nil {
			color.Yellow("malformed frame: %v", err)
			continue
		}
		status.update(snapshot)
	}
}
