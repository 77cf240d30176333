package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configDeleteCmd)
}

var setCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := sess.SetConfig(args[0], args[1])
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}
		fmt.Printf("Config '%s' set to '%s'\n", key, args[1])
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := sess.GetConfig(args[0])
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}
		fmt.Printf("%s = %s\n", entry.Key, entry.Value)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "config-list",
	Short: "List all configuration keys and values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := sess.Configs()
		if err != nil {
			return err
		}

		fmt.Println("Config:")
		fmt.Println("-------")
		for _, e := range entries {
			fmt.Printf("%s = %s\n", e.Key, e.Value)
		}
		return nil
	},
}

var configDeleteCmd = &cobra.Command{
	Use:   "config-delete KEY",
	Short: "Delete a configuration key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := sess.DeleteConfig(args[0])
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}
		fmt.Printf("Config '%s' deleted\n", key)
		return nil
	},
}
