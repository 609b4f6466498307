package google

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		account string
		wantErr bool
	}{
		{"valid default", "default", false},
		{"valid work", "work", false},
		{"valid with hyphen", "work-email", false},
		{"valid with underscore", "personal_email", false},
		{"valid alphanumeric", "account123", false},
		{"empty", "", true},
		{"with spaces", "my account", true},
		{"with special chars", "account@work", true},
		{"with slash", "work/personal", true},
		{"with dot", "work.email", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAccountName(tt.account)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAccountName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetTokenFilePath(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    string
	}{
		{"default account", "default", "google-default.token"},
		{"work account", "work", "google-work.token"},
		{"personal account", "personal", "google-personal.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := getTokenFilePath(tt.account)
			if filepath.Base(got) != tt.want {
				t.Errorf("getTokenFilePath() = %v, want base %v", got, tt.want)
			}
		})
	}
}

func TestHasTokenForAccount(t *testing.T) {
	if HasTokenForAccount("invalid account") {
		t.Error("HasTokenForAccount() should return false for invalid account name")
	}

	if HasTokenForAccount("") {
		t.Error("HasTokenForAccount() should return false for empty account name")
	}
}

func TestGetAuthURLForAccount(t *testing.T) {
	url := GetAuthURLForAccount("default")
	if url == "" {
		t.Fatal("GetAuthURLForAccount() returned empty URL")
	}
	if !strings.Contains(url, "access_type=offline") {
		t.Errorf("auth URL should request offline access, got %v", url)
	}
	if !strings.Contains(url, "gmail.readonly") {
		t.Errorf("auth URL should request the gmail.readonly scope, got %v", url)
	}
}
