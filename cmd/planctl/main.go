package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/alecthomas/kong"
)

var CLI struct {
	LogLevel string `help:"Log level." default:"warn" enum:"debug,info,warn,error"`

	Migrate MigrateCmd `cmd:"" help:"Apply pending database migrations."`
	Preview PreviewCmd `cmd:"" help:"Show the tasks a text would create, without saving them."`
	Enhance EnhanceCmd `cmd:"" help:"Rewrite a text into one task per line."`
	Sweep   SweepCmd   `cmd:"" help:"Run one reminder sweep."`

	CalendarAuth CalendarAuthCmd `cmd:"" help:"Authorize Google Calendar and write the token file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("planctl"),
		kong.Description("Operator tooling for the AI task planner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	app, err := newAppContext(CLI.LogLevel, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := ctx.Run(app); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
