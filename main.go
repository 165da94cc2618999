package main

import (
	"log"

	"github.com/greenai-platform/scheduler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
