// Package auth builds authorised HTTP clients for the Sheets and Drive
// APIs from either OAuth2 client credentials or a service account key.
//
// OAuth2 tokens are cached on disk next to the working files so that the
// interactive consent flow only runs once per credentials/scope pair.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	Sheets         = "https://www.googleapis.com/auth/spreadsheets"
	SheetsReadOnly = "https://www.googleapis.com/auth/spreadsheets.readonly"
	Drive          = "https://www.googleapis.com/auth/drive"
	DriveReadOnly  = "https://www.googleapis.com/auth/drive.readonly"
)

// Authorize returns an HTTP client authorised for the given scope. The
// credentials file may hold either an OAuth2 client configuration or a
// service account key; tokens for the OAuth2 flow are cached under workdir.
func Authorize(credentials, scope, workdir string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file (%v)", err)
	}

	if serviceAccount(b) {
		config, err := google.JWTConfigFromJSON(b, scope)
		if err != nil {
			return nil, fmt.Errorf("invalid service account credentials (%v)", err)
		}

		return config.Client(context.Background()), nil
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, fmt.Errorf("invalid OAuth2 credentials (%v)", err)
	}

	client, err := authorizedClient(tokenPath(credentials, scope, workdir), config)
	if err != nil {
		return nil, fmt.Errorf("authorization error (%v)", err)
	}

	return client, nil
}

func serviceAccount(credentials []byte) bool {
	blob := struct {
		Type string `json:"type"`
	}{}

	if err := json.Unmarshal(credentials, &blob); err != nil {
		return false
	}

	return blob.Type == "service_account"
}

// tokenPath derives the cached token file from the credentials file name
// and the scope, so that sheets and drive tokens do not clobber each other.
func tokenPath(credentials, scope, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	switch {
	case strings.HasPrefix(scope, Sheets):
		return filepath.Join(workdir, fmt.Sprintf("%s.sheets", name))

	case strings.HasPrefix(scope, Drive):
		return filepath.Join(workdir, fmt.Sprintf("%s.drive", name))

	default:
		return filepath.Join(workdir, fmt.Sprintf("%s.tokens", name))
	}
}

func authorizedClient(tokens string, config *oauth2.Config) (*http.Client, error) {
	token, err := tokenFromFile(tokens)
	if err != nil {
		if token, err = tokenFromWeb(config); err != nil {
			return nil, err
		}

		if err := saveToken(tokens, token); err != nil {
			return nil, err
		}
	}

	return config.Client(context.Background(), token), nil
}

// tokenFromWeb walks the user through the OAuth2 consent flow on the
// console.
func tokenFromWeb(config *oauth2.Config) (*oauth2.Token, error) {
	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(context.TODO(), code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	return token, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return fmt.Errorf("unable to cache OAuth token (%v)", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token (%v)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
