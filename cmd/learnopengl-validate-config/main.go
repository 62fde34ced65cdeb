package main

import (
	"fmt"
	"log"
	"os"

	"github.com/learnopengl/learnopengl/lib/config"
)

// Checks every config file given on the command line and prints what the
// program would run with.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <config file>...", os.Args[0])
	}

	failed := false
	for _, filename := range os.Args[1:] {
		cfg, err := config.Parse(filename)
		if err != nil {
			fmt.Printf("%s: config invalid: %s\n", filename, err)
			failed = true
			continue
		}
		fmt.Printf("%s: config valid!\n\n%s\n", filename, cfg)
	}

	if failed {
		os.Exit(1)
	}
}
