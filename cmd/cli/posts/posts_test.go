package posts

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/blog-api/cmd/cli/config"
	"github.com/crucial707/blog-api/internal/models"
)

const postID = "3f1c9a52-6a0e-4d55-9a43-5b8f0c1d2e7a"

func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// setupEnv points the CLI at handler and, when token is non-empty, logs in with it.
func setupEnv(t *testing.T, token string, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokenFile := filepath.Join(t.TempDir(), "token")
	t.Setenv("BLOG_API_URL", srv.URL)
	t.Setenv("BLOG_TOKEN_FILE", tokenFile)
	if token != "" {
		if err := os.WriteFile(tokenFile, []byte(token), 0600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGetPost_TableOutput(t *testing.T) {
	setupEnv(t, "", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/post/"+postID {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"post": models.Post{
			ID:        postID,
			UserID:    "u1",
			Title:     "Hello",
			Tags:      []string{"go", "sql"},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}})
	})

	out, err := runCmd(t, getPostCmd(), postID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out, "Hello") || !strings.Contains(out, "go, sql") {
		t.Fatalf("expected post in table, got: %s", out)
	}
}

func TestGetPost_JSONOutput(t *testing.T) {
	setupEnv(t, "", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"post": models.Post{ID: postID, Title: "Hello", Tags: []string{}}})
	})

	out, err := runCmd(t, getPostCmd(), postID, "--json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out, `"title": "Hello"`) {
		t.Fatalf("expected JSON output, got: %s", out)
	}
}

func TestCreatePost_SendsTokenAndFields(t *testing.T) {
	setupEnv(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("missing bearer token: %q", r.Header.Get("Authorization"))
		}
		var in struct {
			Title string   `json:"title"`
			Tags  []string `json:"tags"`
		}
		json.NewDecoder(r.Body).Decode(&in)
		if in.Title != "Hello" || len(in.Tags) != 2 {
			t.Errorf("unexpected payload: %+v", in)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"postID": postID})
	})

	out, err := runCmd(t, createPostCmd(), "--title", "Hello", "--description", "First post", "--tag", "go,sql")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out, postID) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestCreatePost_RequiresLogin(t *testing.T) {
	setupEnv(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Error("request sent without a token")
	})

	_, err := runCmd(t, createPostCmd(), "--title", "Hello", "--description", "First post")
	if err != config.ErrNotLoggedIn {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestDeletePost_Forbidden(t *testing.T) {
	setupEnv(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" {
			t.Errorf("method: got %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "not authorized to modify this post"})
	})

	_, err := runCmd(t, deletePostCmd(), postID)
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected 403 error, got %v", err)
	}
}

func TestUpdatePost(t *testing.T) {
	setupEnv(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" || r.URL.Path != "/api/v1/post/"+postID {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"postID": postID, "msg": "Post updated successfully"})
	})

	out, err := runCmd(t, updatePostCmd(), postID, "--title", "Edited", "--description", "Second draft")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !strings.Contains(out, "Post updated successfully") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestPostCommands_EscapeID(t *testing.T) {
	var got []string
	setupEnv(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.EscapedPath())
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Post not found"})
	})

	const id = "../user/login"
	runCmd(t, getPostCmd(), id)
	runCmd(t, updatePostCmd(), id, "--title", "t", "--description", "d")
	runCmd(t, deletePostCmd(), id)

	want := []string{
		"GET /api/v1/post/..%2Fuser%2Flogin",
		"PUT /api/v1/post/..%2Fuser%2Flogin",
		"DELETE /api/v1/post/..%2Fuser%2Flogin",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("requests:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}
