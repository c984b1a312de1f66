package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Installed is the one-time OAuth flow for desktop-app credentials. It
// produces the token file read by New.
type Installed struct {
	cfg *oauth2.Config
}

func NewInstalled(credentialsJSON []byte) (*Installed, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: expected OAuth desktop credentials: %w", err)
	}
	return &Installed{cfg: cfg}, nil
}

// AuthCodeURL is the page where the user grants access and copies the code.
func (i *Installed) AuthCodeURL(state string) string {
	return i.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeAndSave trades the code for a token and writes it to tokenPath.
func (i *Installed) ExchangeAndSave(ctx context.Context, code, tokenPath string) error {
	tok, err := i.cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("gcalendar: exchange code: %w", err)
	}
	return SaveToken(tokenPath, tok)
}

// SaveToken writes tok as JSON readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("gcalendar: create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("gcalendar: write token: %w", err)
	}
	return nil
}
