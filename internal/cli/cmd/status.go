package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx/internal/cli/cmd/utils"
	"github.com/matjam/blazefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get blazefx status",
		Long:  `Returns the current status of the blazefx daemon.`,
		Run: func(cmd *cobra.Command, args []string) {
			body, err := ipc.SendStatus()
			if err != nil {
				log.Errorf("Error sending command: %v", err)
				return
			}

			utils.PrintRawJSON(body)
		},
	}
}
