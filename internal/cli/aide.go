package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samba-rgb/AIDE/internal/editor"
	"github.com/samba-rgb/AIDE/internal/models"
)

var (
	createType string
	addPath    string
)

func init() {
	createCmd.Flags().StringVarP(&createType, "type", "t", "text", "Aide type: text or file")
	addCmd.Flags().StringVarP(&addPath, "path", "p", "", "Read content from a file instead of the argument")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(aideListCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(searchCmd)
}

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new aide",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, created, err := sess.CreateAide(args[0], models.AideType(createType))
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}
		if created {
			fmt.Printf("Aide '%s' of type '%s' created successfully\n", name, createType)
		} else {
			fmt.Printf("Aide '%s' already exists\n", name)
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add NAME [DATA]",
	Short: "Add data to an aide",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var content string
		switch {
		case addPath != "" && len(args) == 2:
			return fmt.Errorf("cannot specify both data and --path")
		case addPath != "":
			data, err := os.ReadFile(addPath)
			if err != nil {
				return fmt.Errorf("read file '%s': %w", addPath, err)
			}
			content = strings.TrimSpace(string(data))
		case len(args) == 2:
			content = args[1]
		default:
			return fmt.Errorf("must provide either data or --path")
		}

		name, err := sess.AddData(args[0], content)
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}
		fmt.Printf("Data added successfully to aide '%s'\n", name)
		return nil
	},
}

var aideListCmd = &cobra.Command{
	Use:   "aide-list",
	Short: "List all aides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		aides, err := sess.Aides()
		if err != nil {
			return err
		}

		fmt.Println("Aides:")
		fmt.Println("------")
		for _, a := range aides {
			fmt.Printf("%s | Type: %s | Data entries: %d\n", a.Name, a.Type, a.DataCount)
		}
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write NAME",
	Short: "Open a file aide in an editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := sess.AideFilePath(args[0])
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}

		if err := editor.Open(path); err != nil {
			fmt.Printf("Failed to open editor: %v\n", err)
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search TEXT",
	Short: "Search stored data by input text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hit, err := sess.SearchData(args[0])
		if err != nil {
			return err
		}
		if hit == nil {
			fmt.Printf("No matches found for '%s'\n", args[0])
			return nil
		}
		fmt.Printf("Found match in aide '%s': %s\n", hit.AideName, hit.InputText)
		fmt.Printf("Output: %s\n", hit.CommandOutput)
		return nil
	},
}
