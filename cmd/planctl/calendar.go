package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"ai-task-planner/pkg/gcalendar"
)

// CalendarAuthCmd runs the installed-app OAuth flow once and stores the
// token where the api expects it.
type CalendarAuthCmd struct {
	Credentials string `help:"OAuth desktop credentials JSON. Defaults to google_calendar.credentials_path." type:"path"`
	Token       string `help:"Where to write the token. Defaults to google_calendar.token_path or token.json." type:"path"`
}

func (c *CalendarAuthCmd) Run(app *appContext) error {
	credsPath := firstNonEmpty(c.Credentials, app.cfg.GoogleCalendar.CredentialsPath)
	if credsPath == "" {
		return errors.New("no credentials file: pass --credentials or set google_calendar.credentials_path")
	}
	tokenPath := firstNonEmpty(c.Token, app.cfg.GoogleCalendar.TokenPath, "token.json")

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return err
	}
	inst, err := gcalendar.NewInstalled(data)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.out, "Open this URL, sign in and grant calendar access:")
	fmt.Fprintln(app.out)
	fmt.Fprintln(app.out, inst.AuthCodeURL("planctl"))
	fmt.Fprintln(app.out)
	fmt.Fprint(app.out, "Paste the authorization code: ")

	code, err := bufio.NewReader(app.in).ReadString('\n')
	if err != nil && code == "" {
		return fmt.Errorf("read code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("empty authorization code")
	}

	if err := inst.ExchangeAndSave(app.ctx, code, tokenPath); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "\ntoken saved to %s; restart the api to enable the calendar mirror\n", tokenPath)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
