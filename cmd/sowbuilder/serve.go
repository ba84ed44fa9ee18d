package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/dusk-indust/sowbuilder/internal/config"
	"github.com/dusk-indust/sowbuilder/internal/mcptools"
)

// stdin and stdout carry the -stdio transport.
var (
	stdin  io.ReadCloser  = os.Stdin
	stdout io.WriteCloser = os.Stdout
)

// serveFlags are parsed from the serve command line.
type serveFlags struct {
	ConfigDir string
	Port      int
	Stdio     bool
	Verbose   bool
}

func runServe(ctx context.Context, args []string) error {
	var flags serveFlags

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigDir, "config", ".", "directory containing sowbuilder.yml")
	fs.IntVar(&flags.Port, "port", 0, "listen port (overrides config and $PORT)")
	fs.BoolVar(&flags.Stdio, "stdio", false, "serve MCP over stdio instead of HTTP")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	if flags.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := newLogger(level)
	svc := mcptools.NewSOWService(logger)

	if flags.Stdio {
		return mcptools.RunIO(ctx, mcptools.NewSOWMCPServer(svc), stdin, stdout)
	}
	return mcptools.RunMCPServer(ctx, cfg, svc, logger)
}
