package config

import (
	"flag"
	"os"

	"github.com/bamsemats/moonadmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL connection string
//	-u string   database username
//	-p string   database password
//	-dev        enable development mode (migrate + seed before the session)
//
// Development mode can also be requested with a bare "--dev" token, kept for
// compatibility with the original launcher scripts.
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-p", "-dev"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database connection string")
	fs.StringVar(&cfg.DatabaseUser, "u", cfg.DatabaseUser, "database username")
	fs.StringVar(&cfg.DatabasePassword, "p", cfg.DatabasePassword, "database password")
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "development mode: seed the database before starting")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if flagx.HasToken(os.Args[1:], "--dev") {
		cfg.DevMode = true
	}
}
