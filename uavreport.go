package main

import (
	"log"

	"github.com/irreligious86/Report-UAV/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
