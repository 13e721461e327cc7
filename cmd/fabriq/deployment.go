package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

var deploymentCmd = &cobra.Command{
	Use:   "deployment",
	Short: "Manage deployments",
}

var deploymentCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create or update a deployment",
	Long: `Creates a deployment of a workload to the hosts matching a target.
The deployment id derives from the team, workload name, and deployment
name. --hosts takes a count or 'all' to cover every matching host;
--template overrides the workload's default template.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		teamID, _ := cmd.Flags().GetString("team")
		workloadName, _ := cmd.Flags().GetString("workload")
		targetID, _ := cmd.Flags().GetString("target")
		templateID, _ := cmd.Flags().GetString("template")
		hostsArg, _ := cmd.Flags().GetString("hosts")

		if _, _, err := types.SplitTeamID(teamID); err != nil {
			return err
		}
		workloadID := types.MakeWorkloadID(teamID, workloadName)
		id := types.MakeDeploymentID(workloadID, name)

		hostCount, err := parseHostCount(hostsArg)
		if err != nil {
			return err
		}

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.UpsertDeployment(&proto.DeploymentMessage{
			Id:         id,
			Name:       name,
			WorkloadId: workloadID,
			TargetId:   targetID,
			TemplateId: templateID,
			HostCount:  hostCount,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Deployment created: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var deploymentDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a deployment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.DeleteDeployment(id)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Deployment deleted: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var deploymentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deployments",
	RunE: func(cmd *cobra.Command, args []string) error {
		workloadID, _ := cmd.Flags().GetString("workload")

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		var deployments []*proto.DeploymentMessage
		if workloadID != "" {
			deployments, err = c.GetDeploymentsByWorkload(workloadID)
		} else {
			deployments, err = c.ListDeployments()
		}
		if err != nil {
			return err
		}

		w := table(cmd, "ID\tWORKLOAD\tTARGET\tTEMPLATE\tHOSTS")
		for _, deployment := range deployments {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				deployment.GetId(), deployment.GetWorkloadId(), deployment.GetTargetId(),
				deployment.GetTemplateId(), formatHostCount(deployment.GetHostCount()))
		}
		return w.Flush()
	},
}

// parseHostCount turns a --hosts value into a host count. "all" covers
// every host matching the target.
func parseHostCount(value string) (int32, error) {
	if value == "all" {
		return types.AllHosts, nil
	}
	count, err := strconv.ParseInt(value, 10, 32)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("invalid --hosts value %q: want a count or 'all'", value)
	}
	return int32(count), nil
}

func formatHostCount(count int32) string {
	if count == types.AllHosts {
		return "all"
	}
	return strconv.FormatInt(int64(count), 10)
}

func init() {
	deploymentCmd.AddCommand(deploymentCreateCmd)
	deploymentCmd.AddCommand(deploymentDeleteCmd)
	deploymentCmd.AddCommand(deploymentListCmd)

	deploymentCreateCmd.Flags().String("team", "", "Owning team id (org:team)")
	deploymentCreateCmd.Flags().StringP("workload", "w", "", "Workload name within the team")
	deploymentCreateCmd.Flags().StringP("target", "t", "", "Target whose hosts receive the deployment")
	deploymentCreateCmd.Flags().String("template", "", "Template override (default: the workload's template)")
	deploymentCreateCmd.Flags().String("hosts", "1", "Host count, or 'all'")
	deploymentCreateCmd.MarkFlagRequired("team")
	deploymentCreateCmd.MarkFlagRequired("workload")
	deploymentCreateCmd.MarkFlagRequired("target")

	deploymentListCmd.Flags().StringP("workload", "w", "", "Only deployments of this workload id")
}
