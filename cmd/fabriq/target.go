package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/api/proto"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Manage targets",
}

var targetCreateCmd = &cobra.Command{
	Use:   "create ID",
	Short: "Create or update a target",
	Long: `Creates a target: a named label query over hosts. A host matches
when it carries every label of the target.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		labels, _ := cmd.Flags().GetStringArray("label")

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.UpsertTarget(&proto.TargetMessage{Id: id, Labels: labels})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Target created: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var targetDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.DeleteTarget(id)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Target deleted: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var targetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		targets, err := c.ListTargets()
		if err != nil {
			return err
		}

		w := table(cmd, "ID\tLABELS")
		for _, target := range targets {
			fmt.Fprintf(w, "%s\t%s\n", target.GetId(), strings.Join(target.GetLabels(), ","))
		}
		return w.Flush()
	},
}

func init() {
	targetCmd.AddCommand(targetCreateCmd)
	targetCmd.AddCommand(targetDeleteCmd)
	targetCmd.AddCommand(targetListCmd)

	targetCreateCmd.Flags().StringArrayP("label", "l", nil, "Label a host must carry (key:value), repeatable")
}
