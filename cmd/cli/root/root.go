package root

import (
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:           "blog",
	Short:         "Blog API CLI",
	Long:          "Command line interface for signing up, logging in and managing posts on the blog API.\nSet BLOG_API_URL to target a server other than http://localhost:8080.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
