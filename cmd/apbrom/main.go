// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command apbrom assembles APB sequencer programs into ROM images.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
