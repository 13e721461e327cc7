package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabriq-cloud/fabriq/api/proto"
	"github.com/fabriq-cloud/fabriq/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage config",
}

var configCreateCmd = &cobra.Command{
	Use:   "create KEY VALUE",
	Short: "Create or update a config entry",
	Long: `Creates a config entry owned by a template, workload, or deployment.
Deployment config overrides workload config, which overrides template
config, when a deployment's config is resolved.

--type keyvalue marks the value as 'k1=v1;k2=v2' pairs with URL-encoded
values; the default treats it as an opaque string.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		owningModel, err := owningModelFromFlags(cmd)
		if err != nil {
			return err
		}
		valueType, err := parseValueType(cmd)
		if err != nil {
			return err
		}

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.UpsertConfig(&proto.ConfigMessage{
			OwningModel: owningModel,
			Key:         key,
			Value:       value,
			ValueType:   valueType,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Config created: %s (operation: %s)\n",
			types.MakeConfigID(owningModel, key), operationID)
		return nil
	},
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a config entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		operationID, err := c.DeleteConfig(id)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Config deleted: %s (operation: %s)\n", id, operationID)
		return nil
	},
}

var configQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query resolved config for an owner",
	Long: `Queries config for a template, workload, or deployment. A workload
query layers the workload's entries over its template's; a deployment
query resolves the full template, workload, and deployment stack.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, modelID, err := ownerFromFlags(cmd)
		if err != nil {
			return err
		}

		c, err := apiClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		configs, err := c.QueryConfigs(kind, modelID)
		if err != nil {
			return err
		}

		w := table(cmd, "ID\tOWNER\tKEY\tVALUE")
		for _, config := range configs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				config.GetId(), config.GetOwningModel(), config.GetKey(), config.GetValue())
		}
		return w.Flush()
	},
}

// ownerFromFlags resolves the owner flags to a kind and model id. When
// several are given, workload wins over deployment over template.
func ownerFromFlags(cmd *cobra.Command) (kind, modelID string, err error) {
	workloadID, _ := cmd.Flags().GetString("workload")
	deploymentID, _ := cmd.Flags().GetString("deployment")
	templateID, _ := cmd.Flags().GetString("template")

	switch {
	case workloadID != "":
		return types.OwnerWorkload, workloadID, nil
	case deploymentID != "":
		return types.OwnerDeployment, deploymentID, nil
	case templateID != "":
		return types.OwnerTemplate, templateID, nil
	default:
		return "", "", fmt.Errorf("an owner is required: --workload, --deployment, or --template")
	}
}

func owningModelFromFlags(cmd *cobra.Command) (string, error) {
	kind, modelID, err := ownerFromFlags(cmd)
	if err != nil {
		return "", err
	}
	return types.MakeOwningModel(kind, modelID)
}

func parseValueType(cmd *cobra.Command) (int32, error) {
	name, _ := cmd.Flags().GetString("type")
	switch name {
	case "string":
		return int32(types.ConfigValueTypeString), nil
	case "keyvalue":
		return int32(types.ConfigValueTypeKeyValue), nil
	default:
		return 0, fmt.Errorf("invalid --type %q: want string or keyvalue", name)
	}
}

// ownerFlags registers the owner selection flags shared by create and query.
func ownerFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("workload", "w", "", "Owning workload id")
	cmd.Flags().StringP("deployment", "d", "", "Owning deployment id")
	cmd.Flags().StringP("template", "t", "", "Owning template id")
}

func init() {
	configCmd.AddCommand(configCreateCmd)
	configCmd.AddCommand(configDeleteCmd)
	configCmd.AddCommand(configQueryCmd)

	ownerFlags(configCreateCmd)
	configCreateCmd.Flags().String("type", "string", "Value type: string or keyvalue")
	ownerFlags(configQueryCmd)
}
