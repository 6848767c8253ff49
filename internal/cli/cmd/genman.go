package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewGenManCmd returns a cobra command to generate man pages
func NewGenManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "genman [output-dir]",
		Short: "Generate man pages for the blazefx CLI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Clean(args[0])
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			header := &doc.GenManHeader{
				Title:   "BLAZEFX",
				Section: "1",
				Source:  "blazefx " + strings.TrimSpace(blazefx.Version),
			}
			if err := doc.GenManTree(rootCmd, header, dir); err != nil {
				return err
			}
			log.Infof("Wrote man pages to %s", dir)
			return nil
		},
	}
}
