package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx/internal/cli/cmd/utils"
	"github.com/matjam/blazefx/internal/page"
	"github.com/spf13/cobra"
)

func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [page.yaml]",
		Short: "Render a page file to static HTML",
		Long: `Renders every element of a YAML page file into a standalone HTML document.
The document applies each element's animation from a script once it has
loaded, the same way the daemon's preview does.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			p, err := page.Load(utils.CanonicalPath(args[0]))
			if err != nil {
				log.Fatalf("%v", err)
			}
			if v, _ := cmd.Flags().GetBool("inline"); v {
				p.InlineAssets = true
			}

			defaults, err := utils.LoadDefaults()
			if err != nil {
				log.Fatalf("Invalid config: %v", err)
			}

			var w io.Writer = cmd.OutOrStdout()
			if out, _ := cmd.Flags().GetString("output"); out != "" {
				f, err := os.Create(utils.CanonicalPath(out))
				if err != nil {
					log.Fatalf("Error creating output: %v", err)
				}
				defer f.Close()
				w = f
			}

			bw := bufio.NewWriter(w)
			if err := page.Render(bw, p, defaults); err != nil {
				log.Fatalf("Error rendering page: %v", err)
			}
			if err := bw.Flush(); err != nil {
				log.Fatalf("Error writing page: %v", err)
			}
			log.Debugf("Rendered %d elements", len(p.Elements))
		},
	}
	cmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
	cmd.Flags().Bool("inline", false, "inline the stylesheet and script")
	return cmd
}
