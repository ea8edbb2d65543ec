package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atlasdoors/backoffice/scripts/internal"
)

// Command represents a script that can be run
type Command struct {
	Name        string
	Description string
	Run         func() error
}

var (
	userID string
	roles  string
)

var commands = []Command{
	{
		Name:        "migrate-schema",
		Description: "Create the back-office database tables",
		Run:         internal.MigrateSchema,
	},
	{
		Name:        "generate-token",
		Description: "Generate a staff JWT token",
		Run: func() error {
			return internal.GenerateStaffToken(userID, roles)
		},
	},
}

func main() {
	var (
		listCommands bool
		cmdName      string
	)

	flag.BoolVar(&listCommands, "list", false, "List available commands")
	flag.StringVar(&cmdName, "cmd", "", "Command to run")
	flag.StringVar(&userID, "user", "", "User ID for token generation")
	flag.StringVar(&roles, "roles", "staff", "Comma-separated roles for token generation")
	flag.Parse()

	if listCommands {
		fmt.Println("Available commands:")
		for _, cmd := range commands {
			fmt.Printf("  %-18s %s\n", cmd.Name, cmd.Description)
		}
		return
	}

	for _, cmd := range commands {
		if cmd.Name == cmdName {
			if err := cmd.Run(); err != nil {
				log.Fatalf("command %s failed: %v", cmdName, err)
			}
			return
		}
	}

	fmt.Printf("unknown command %q, use -list to see available commands\n", cmdName)
	os.Exit(1)
}
