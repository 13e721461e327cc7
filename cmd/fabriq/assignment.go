package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/api/proto"
)

var assignmentCmd = &cobra.Command{
	Use:   "assignment",
	Short: "Inspect assignments",
	Long: `Assignments bind deployments to hosts. The reconciler maintains
them from deployments, targets, and hosts; the CLI only reads them.`,
}

var assignmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		deploymentID, _ := cmd.Flags().GetString("deployment")

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		var assignments []*proto.AssignmentMessage
		if deploymentID != "" {
			assignments, err = c.GetAssignmentsByDeployment(deploymentID)
		} else {
			assignments, err = c.ListAssignments()
		}
		if err != nil {
			return err
		}

		w := table(cmd, "ID\tDEPLOYMENT\tHOST")
		for _, assignment := range assignments {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				assignment.GetId(), assignment.GetDeploymentId(), assignment.GetHostId())
		}
		return w.Flush()
	},
}

func init() {
	assignmentCmd.AddCommand(assignmentListCmd)

	assignmentListCmd.Flags().StringP("deployment", "d", "", "Only assignments for this deployment id")
}
