package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/shlex"
)

// runREPL reads commands from in, tokenizing with shlex so quoted
// arguments work the way a shell would.
func runREPL(ctx context.Context, in *bufio.Scanner, status *statusServer) {
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}

		args, err := shlex.Split(in.Text())
		if err != nil || len(args) == 0 {
			continue
		}

		switch args[0] {
		case "quit", "exit", "q":
			color.Cyan("goodbye")
			return

		case "help", "?":
			printHelp()

		case "status":
			printStatus(status)

		default:
			color.Yellow("unknown command: %s (type 'help' for available commands)", args[0])
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func printHelp() {
	fmt.Println("  help            show this help message")
	fmt.Println("  status          print the last received trace/status snapshot")
	fmt.Println("  quit/exit/q     exit the program")
}

func printStatus(status *statusServer) {
	snapshot := status.current()
	if len(snapshot) == 0 {
		color.Yellow("no frames received yet")
		return
	}
	encoded, _ := json.MarshalIndent(snapshot, "", "  ")
	fmt.Println(string(encoded))
}
