package auth

import (
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"
)

func TestTokenPath(t *testing.T) {
	cases := map[string]string{
		Sheets:         "credentials.sheets",
		SheetsReadOnly: "credentials.sheets",
		Drive:          "credentials.drive",
		DriveReadOnly:  "credentials.drive",
		"https://www.googleapis.com/auth/other": "credentials.tokens",
	}

	for scope, expected := range cases {
		path := tokenPath("/etc/gsheets/credentials.json", scope, "/var/gsheets")
		if path != filepath.Join("/var/gsheets", expected) {
			t.Errorf("Incorrect token path for scope %s\n   expected: %s\n   got:      %s", scope, filepath.Join("/var/gsheets", expected), path)
		}
	}
}

func TestServiceAccount(t *testing.T) {
	if !serviceAccount([]byte(`{ "type": "service_account", "project_id": "x" }`)) {
		t.Errorf("Expected service account credentials to be detected")
	}

	if serviceAccount([]byte(`{ "installed": { "client_id": "x" } }`)) {
		t.Errorf("Expected OAuth2 client credentials to not be detected as a service account")
	}

	if serviceAccount([]byte(`not json`)) {
		t.Errorf("Expected invalid credentials to not be detected as a service account")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens", "credentials.sheets")

	token := oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
	}

	if err := saveToken(path, &token); err != nil {
		t.Fatalf("Unexpected error saving token (%v)", err)
	}

	restored, err := tokenFromFile(path)
	if err != nil {
		t.Fatalf("Unexpected error reading token (%v)", err)
	}

	if restored.AccessToken != token.AccessToken || restored.RefreshToken != token.RefreshToken {
		t.Errorf("Incorrect token\n   expected: %+v\n   got:      %+v", token, *restored)
	}
}

func TestTokenFromMissingFile(t *testing.T) {
	if _, err := tokenFromFile(filepath.Join(t.TempDir(), "missing.tokens")); err == nil {
		t.Errorf("Expected error reading missing token file, got %v", err)
	}
}
