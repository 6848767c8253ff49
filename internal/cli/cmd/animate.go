package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx/internal/ipc"
	"github.com/matjam/blazefx/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewAnimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate [id]",
		Short: "Configure an element on the running daemon",
		Long: `Creates or reconfigures an animated element. Unset timing flags fall back
to the [defaults] table of the daemon's config.`,
		Example: `  blazefx animate hero --kind fade-in --duration 2 --easing ease-in-out
  blazefx animate card --kind zoom-in --render-complete-only --attr role=note`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			spec, err := specFromFlags(args[0], cmd.Flags())
			if err != nil {
				log.Fatalf("Invalid element: %v", err)
			}
			if err := spec.Validate(); err != nil {
				log.Fatalf("%v", err)
			}

			if err := ipc.SendConfigure(spec); err != nil {
				log.Fatalf("Failed to send 'animate' command: %v", err)
			}
			log.Infof("Configured %s (%s)", spec.ID, spec.Kind)
		},
	}

	cmd.Flags().StringP("kind", "k", "fade-in", "animation kind, see 'blazefx easings --kinds'")
	cmd.Flags().Float64("duration", 0, "duration in seconds")
	cmd.Flags().Float64("delay", 0, "delay in seconds")
	cmd.Flags().StringP("easing", "e", "", "easing name, see 'blazefx easings'")
	cmd.Flags().String("fill-mode", "", "none, forwards, backwards or both")
	cmd.Flags().Bool("render-complete-only", false, "stay hidden until the first completed render")
	cmd.Flags().String("content", "", "text content of the element")
	cmd.Flags().StringArray("attr", nil, "extra attribute as key=value, repeatable")
	return cmd
}

func specFromFlags(id string, flags *pflag.FlagSet) (types.ElementSpec, error) {
	spec := types.ElementSpec{ID: id}
	spec.Kind, _ = flags.GetString("kind")
	spec.Easing, _ = flags.GetString("easing")
	spec.FillMode, _ = flags.GetString("fill-mode")
	spec.RenderCompleteOnly, _ = flags.GetBool("render-complete-only")
	spec.Content, _ = flags.GetString("content")

	if flags.Changed("duration") {
		v, _ := flags.GetFloat64("duration")
		spec.Duration = types.Float(v)
	}
	if flags.Changed("delay") {
		v, _ := flags.GetFloat64("delay")
		spec.Delay = types.Float(v)
	}

	attrs, _ := flags.GetStringArray("attr")
	for _, a := range attrs {
		key, value, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return spec, fmt.Errorf("attribute %q is not key=value", a)
		}
		if spec.Attributes == nil {
			spec.Attributes = map[string]string{}
		}
		spec.Attributes[key] = value
	}
	return spec, nil
}
