package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id] ...",
		Short: "Remove elements from the running daemon",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, id := range args {
				if err := ipc.SendRemove(id); err != nil {
					log.Fatalf("Failed to send 'remove' command: %v", err)
				}
				log.Infof("Removed %s", id)
			}
		},
	}
}
