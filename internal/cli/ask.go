package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samba-rgb/AIDE/internal/llm"
	"github.com/samba-rgb/AIDE/internal/tui"
)

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(tuiCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask QUESTION",
	Short: "Ask the LLM to translate a request into an aide command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := llm.New(llm.Config{
			Endpoint: sess.ConfigValue("llm_endpoint"),
			Model:    sess.ConfigValue("llm_model"),
			APIKey:   sess.ConfigValue("llm_api_key"),
		})

		answer, err := client.Ask(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(answer)
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive task and aide browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(sess)
	},
}
