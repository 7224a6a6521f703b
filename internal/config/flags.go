package config

import (
	"flag"
	"os"

	"github.com/cashtrack/cashtrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base address of the CashTrack backend (default from Config)
//	-d string   path to the local sqlite database
//	-l int      page size for listings
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base address of the backend API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.IntVar(&cfg.PageLimit, "l", cfg.PageLimit, "page size for listings")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
