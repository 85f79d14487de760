package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// runCmd executes cmd with args and returns what it printed.
func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func setupEnv(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokenFile := filepath.Join(t.TempDir(), "token")
	t.Setenv("BLOG_API_URL", srv.URL)
	t.Setenv("BLOG_TOKEN_FILE", tokenFile)
	return tokenFile
}

func TestLogin_SavesToken(t *testing.T) {
	tokenFile := setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/user/login" || r.Method != "POST" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in map[string]string
		json.NewDecoder(r.Body).Decode(&in)
		if in["email"] != "ada@example.com" || in["password"] != "password123" {
			t.Errorf("unexpected payload: %v", in)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "u1", "token": "tok-123"})
	})

	out, err := runCmd(t, loginCmd(), "--email", "ada@example.com", "--password", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "Login successful") {
		t.Errorf("unexpected output: %s", out)
	}

	data, err := os.ReadFile(tokenFile)
	if err != nil || string(data) != "tok-123" {
		t.Errorf("token file: %q, %v", data, err)
	}
}

func TestLogin_APIErrorIsReported(t *testing.T) {
	tokenFile := setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "User not found"})
	})

	_, err := runCmd(t, loginCmd(), "--email", "nobody@example.com", "--password", "password123")
	if err == nil || !strings.Contains(err.Error(), "User not found") {
		t.Fatalf("expected API error, got %v", err)
	}
	if _, statErr := os.Stat(tokenFile); !os.IsNotExist(statErr) {
		t.Error("token saved after failed login")
	}
}

func TestSignup_ReportsValidationFields(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "Invalid data",
			"fields": map[string]string{"password": "must be at least 8 characters"},
		})
	})

	_, err := runCmd(t, signupCmd(),
		"--first-name", "Ada", "--last-name", "Lovelace",
		"--email", "ada@example.com", "--password", "short")
	if err == nil || !strings.Contains(err.Error(), "password: must be at least 8 characters") {
		t.Fatalf("expected field error, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	tokenFile := setupEnv(t, nil)

	out, err := runCmd(t, logoutCmd())
	if err != nil || !strings.Contains(out, "No user logged in") {
		t.Fatalf("logout without token: %q, %v", out, err)
	}

	os.WriteFile(tokenFile, []byte("tok"), 0600)
	out, err = runCmd(t, logoutCmd())
	if err != nil || !strings.Contains(out, "Logged out successfully") {
		t.Fatalf("logout: %q, %v", out, err)
	}
	if _, statErr := os.Stat(tokenFile); !os.IsNotExist(statErr) {
		t.Error("token file still present")
	}
}
