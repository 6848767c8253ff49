package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx/internal/cli/cmd/utils"
	"github.com/matjam/blazefx/internal/ipc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the elements of the running daemon",
		Run: func(cmd *cobra.Command, args []string) {
			list, err := ipc.SendList()
			if err != nil {
				log.Fatalf("Failed to send 'list' command: %v", err)
			}

			if v, _ := cmd.Flags().GetBool("yaml"); v {
				out, err := yaml.Marshal(list)
				if err != nil {
					log.Fatalf("Error marshalling YAML: %v", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
				return
			}
			utils.PrintJSONColored(list)
		},
	}
	cmd.Flags().Bool("yaml", false, "print YAML instead of JSON")
	return cmd
}
