package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/api/proto"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage templates",
}

var templateCreateCmd = &cobra.Command{
	Use:   "create ID",
	Short: "Create or update a template",
	Long: `Creates a template: a reference to deployment manifests in a git
repository, pinned to a branch or tag and a path inside the tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		repository, _ := cmd.Flags().GetString("repository")
		branch, _ := cmd.Flags().GetString("branch")
		path, _ := cmd.Flags().GetString("path")

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.UpsertTemplate(&proto.TemplateMessage{
			Id:         id,
			Repository: repository,
			GitRef:     branch,
			Path:       path,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Template created: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.DeleteTemplate(id)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Template deleted: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		templates, err := c.ListTemplates()
		if err != nil {
			return err
		}

		w := table(cmd, "ID\tREPOSITORY\tBRANCH\tPATH")
		for _, template := range templates {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				template.GetId(), template.GetRepository(), template.GetGitRef(), template.GetPath())
		}
		return w.Flush()
	},
}

func init() {
	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	templateCmd.AddCommand(templateListCmd)

	templateCreateCmd.Flags().StringP("repository", "r", "", "Git repository URL")
	templateCreateCmd.Flags().StringP("branch", "b", "main", "Git branch or tag")
	templateCreateCmd.Flags().StringP("path", "p", "", "Path inside the repository (default: repository root)")
	templateCreateCmd.MarkFlagRequired("repository")
}
