package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

var workloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Manage workloads",
}

var workloadCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create or update a workload",
	Long: `Creates a workload owned by a team. The workload id derives from
the team id and name, so 'fabriq workload create cribbage --team
fabriq-cloud:platform' yields fabriq-cloud:platform:cribbage.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		teamID, _ := cmd.Flags().GetString("team")
		templateID, _ := cmd.Flags().GetString("template")

		if _, _, err := types.SplitTeamID(teamID); err != nil {
			return err
		}
		id := types.MakeWorkloadID(teamID, name)

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.UpsertWorkload(&proto.WorkloadMessage{
			Id:         id,
			Name:       name,
			TeamId:     teamID,
			TemplateId: templateID,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Workload created: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var workloadDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a workload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.DeleteWorkload(id)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Workload deleted: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var workloadListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		workloads, err := c.ListWorkloads()
		if err != nil {
			return err
		}

		w := table(cmd, "ID\tNAME\tTEAM\tTEMPLATE")
		for _, workload := range workloads {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				workload.GetId(), workload.GetName(), workload.GetTeamId(), workload.GetTemplateId())
		}
		return w.Flush()
	},
}

func init() {
	workloadCmd.AddCommand(workloadCreateCmd)
	workloadCmd.AddCommand(workloadDeleteCmd)
	workloadCmd.AddCommand(workloadListCmd)

	workloadCreateCmd.Flags().String("team", "", "Owning team id (org:team)")
	workloadCreateCmd.Flags().StringP("template", "t", "", "Default template for the workload's deployments")
	workloadCreateCmd.MarkFlagRequired("team")
	workloadCreateCmd.MarkFlagRequired("template")
}
