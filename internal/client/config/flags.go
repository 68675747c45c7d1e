package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   server base URL
//	-f string   local database file
//	-t int      request timeout, seconds
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "FoundrMate server URL")
	fs.StringVar(&cfg.DBPath, "f", cfg.DBPath, "local database file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
