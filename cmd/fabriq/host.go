package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/api/proto"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Manage hosts",
}

var hostCreateCmd = &cobra.Command{
	Use:   "create ID",
	Short: "Create or update a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		labels, _ := cmd.Flags().GetStringArray("label")

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.UpsertHost(&proto.HostMessage{Id: id, Labels: labels})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Host created: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var hostDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.DeleteHost(id)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Host deleted: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var hostListCmd = &cobra.Command{
	Use:   "list",
	Short: "List hosts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		hosts, err := c.ListHosts()
		if err != nil {
			return err
		}

		w := table(cmd, "ID\tLABELS")
		for _, host := range hosts {
			fmt.Fprintf(w, "%s\t%s\n", host.GetId(), strings.Join(host.GetLabels(), ","))
		}
		return w.Flush()
	},
}

func init() {
	hostCmd.AddCommand(hostCreateCmd)
	hostCmd.AddCommand(hostDeleteCmd)
	hostCmd.AddCommand(hostListCmd)

	hostCreateCmd.Flags().StringArrayP("label", "l", nil, "Label (key:value), repeatable")
}
