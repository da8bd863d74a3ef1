package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/watchapi"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Collections watchapi.CollectionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `short:"c" env:"WATCHAPI_CONFIG" type:"path" help:"YAML file selecting the collection page source"`
	LogLevel  string `env:"WATCHAPI_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `env:"WATCHAPI_LOG_FORMAT" default:"text" enum:"text,json" help:"Log format (text, json)"`

	Serve ServeCmd `cmd:"" help:"Serve the watch collection API"`
	List  ListCmd  `cmd:"" help:"Print the watch collection as JSON"`
	Find  FindCmd  `cmd:"" help:"Find a watch by name"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" env:"WATCHAPI_ADDR" default:":8000" help:"Listen address"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Name string `arg:"" help:"Watch name (case-insensitive)"`
}
