package gsheets

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

var errStaleToken = errors.New("cached token expired and cannot be refreshed")

// Authenticator produces an authorized HTTP client, caching the user's tokens between runs.
type Authenticator struct {
	// CredentialsFile is the OAuth client secret downloaded from the cloud console.
	CredentialsFile string
	// TokenFile stores the user's access and refresh tokens.  It is created automatically when the authorization
	// flow completes for the first time.
	TokenFile string
	// In and Out are used for the browser authorization prompt.
	In  io.Reader
	Out io.Writer
}

func (a *Authenticator) Client(ctx context.Context) (*http.Client, error) {
	b, err := os.ReadFile(a.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading client secret file: %w", err)
	}
	// If modifying these scopes, delete your previously saved token.
	config, err := google.ConfigFromJSON(b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing client secret file: %w", err)
	}
	return a.clientFor(ctx, config)
}

func (a *Authenticator) clientFor(ctx context.Context, config *oauth2.Config) (*http.Client, error) {
	tok, err := TokenFromFile(a.TokenFile)
	if err == nil && !tok.Valid() && tok.RefreshToken == "" {
		err = errStaleToken
	}
	if err != nil {
		log.WithError(err).Debug("No usable cached token")
		tok, err = TokenFromWeb(ctx, config, a.In, a.Out)
		if err != nil {
			return nil, err
		}
		if err := SaveToken(a.TokenFile, tok); err != nil {
			return nil, err
		}
	}
	source := &savingTokenSource{
		base: config.TokenSource(ctx, tok),
		path: a.TokenFile,
		last: tok.AccessToken,
	}
	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(tok, source)), nil
}

// TokenFromWeb requests a token from the web, reading the authorization code from in.
func TokenFromWeb(ctx context.Context, config *oauth2.Config, in io.Reader, out io.Writer) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	authCode, err := bufio.NewReader(in).ReadString('\n')
	authCode = strings.TrimSpace(authCode)
	if authCode == "" {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("reading authorization code: %w", err)
	}

	tok, err := config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("retrieving token from web: %w", err)
	}
	return tok, nil
}

// TokenFromFile retrieves a token from a local file.
func TokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

// SaveToken saves a token to a file path readable only by the owner.
func SaveToken(path string, token *oauth2.Token) error {
	log.WithField("path", path).Info("Saving credential file")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("caching oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// savingTokenSource writes refreshed tokens back to disk so the next run starts from them.
type savingTokenSource struct {
	base oauth2.TokenSource
	path string
	last string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		if err := SaveToken(s.path, tok); err != nil {
			log.WithError(err).Warn("Unable to persist refreshed token")
		}
	}
	return tok, nil
}
