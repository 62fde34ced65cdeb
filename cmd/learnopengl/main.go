package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/learnopengl/learnopengl/lib/app"
	"github.com/learnopengl/learnopengl/lib/config"
	"github.com/learnopengl/learnopengl/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	configPtr := flag.String("config", "", "YAML config file, defaults are used when empty")
	levelPtr := flag.String("log-level", "", "Overrides log.level from the config")
	flag.Parse()

	cfg := config.Default()
	if *configPtr != "" {
		var err error
		cfg, err = config.Parse(*configPtr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config invalid: %s\n", err)
			os.Exit(app.ExitInitFailure)
		}
	}
	if *levelPtr != "" {
		cfg.Log.Level = *levelPtr
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(app.ExitInitFailure)
	}
	log.Setup(level)

	os.Exit(app.Run(cfg))
}
