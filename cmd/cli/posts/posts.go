package posts

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/blog-api/cmd/cli/api"
	"github.com/crucial707/blog-api/cmd/cli/config"
	"github.com/crucial707/blog-api/cmd/cli/output"
	"github.com/crucial707/blog-api/internal/models"
)

// ==========================
// Init Posts
// ==========================
func InitPosts(rootCmd *cobra.Command) {
	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Create, view, edit and delete posts",
	}

	postCmd.AddCommand(
		createPostCmd(),
		getPostCmd(),
		updatePostCmd(),
		deletePostCmd(),
	)

	rootCmd.AddCommand(postCmd)
}

// postPath escapes id so it always names a single post resource.
func postPath(id string) string {
	return "/api/v1/post/" + url.PathEscape(id)
}

type postFields struct {
	title       string
	description string
	imageURL    string
	tags        []string
}

func (f *postFields) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Post title")
	cmd.Flags().StringVar(&f.description, "description", "", "Post body")
	cmd.Flags().StringVar(&f.imageURL, "image-url", "", "Optional cover image URL")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "Tag (repeatable or comma-separated)")
}

func (f *postFields) payload() map[string]interface{} {
	tags := f.tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]interface{}{
		"title":       f.title,
		"description": f.description,
		"imageUrl":    f.imageURL,
		"tags":        tags,
	}
}

// ==========================
// CREATE
// ==========================
func createPostCmd() *cobra.Command {
	var f postFields

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return err
			}

			var res struct {
				PostID string `json:"postID"`
			}
			if err := api.Call("POST", "/api/v1/post/create", token, f.payload(), &res); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Post created: %s\n", res.PostID)
			return nil
		},
	}

	f.bind(cmd)
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("description")
	return cmd
}

// ==========================
// GET
// ==========================
func getPostCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <postID>",
		Short: "Show a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res struct {
				Post models.Post `json:"post"`
			}
			if err := api.Call("GET", postPath(args[0]), "", nil, &res); err != nil {
				return err
			}

			if asJSON {
				return output.RenderJSON(cmd.OutOrStdout(), res.Post)
			}

			p := res.Post
			output.RenderTable(cmd.OutOrStdout(),
				[]string{"Field", "Value"},
				[][]interface{}{
					{"ID", p.ID},
					{"Author", p.UserID},
					{"Title", p.Title},
					{"Description", p.Description},
					{"Image", p.ImageURL},
					{"Tags", strings.Join(p.Tags, ", ")},
					{"Created", p.CreatedAt.Format(time.RFC3339)},
					{"Updated", p.UpdatedAt.Format(time.RFC3339)},
				},
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw post as JSON")
	return cmd
}

// ==========================
// UPDATE
// ==========================
func updatePostCmd() *cobra.Command {
	var f postFields

	cmd := &cobra.Command{
		Use:   "update <postID>",
		Short: "Replace a post's title, description, image and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return err
			}

			var res struct {
				PostID string `json:"postID"`
				Msg    string `json:"msg"`
			}
			if err := api.Call("PUT", postPath(args[0]), token, f.payload(), &res); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Msg)
			return nil
		},
	}

	f.bind(cmd)
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("description")
	return cmd
}

// ==========================
// DELETE
// ==========================
func deletePostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <postID>",
		Short: "Delete a post you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return err
			}

			var res struct {
				Msg string `json:"msg"`
			}
			if err := api.Call("DELETE", postPath(args[0]), token, nil, &res); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Msg)
			return nil
		},
	}
}
