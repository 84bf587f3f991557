package config

import (
	"flag"
	"os"
	"time"

	"github.com/bloodstream/bloodstream-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the REST API
//	-s string   websocket endpoint for realtime updates
//	-d string   path to the local session database
//	-t int      HTTP request timeout in seconds
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	fs.StringVar(&cfg.SocketURL, "s", cfg.SocketURL, "websocket endpoint for realtime updates")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path to the local session database")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}
