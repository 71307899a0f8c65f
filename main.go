package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"killboard/cmd"
	"killboard/database"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrate(os.Args[2:]); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		return
	}

	// SIGINT/SIGTERM cancel the context; cmd.Run owns the shutdown sequence
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx); err != nil {
		log.Fatalf("killboard: %v", err)
	}
}

// runMigrate dispatches the migrate subcommand so schema management works
// without a configured bot.
func runMigrate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: killboard migrate up|down [steps]|status")
	}

	switch args[0] {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
			steps = n
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migrate command %q", args[0])
	}
}
