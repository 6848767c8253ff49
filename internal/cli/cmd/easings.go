package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matjam/blazefx/pkg/fx"
	"github.com/spf13/cobra"
)

func NewEasingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "easings",
		Short: "List easings and the CSS they produce",
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("kinds"); v {
				fmt.Fprint(cmd.OutOrStdout(), kindTable())
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), easingTable())
		},
	}
	cmd.Flags().Bool("kinds", false, "list animation kinds instead")
	return cmd
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	nameStyle     = lipgloss.NewStyle().Width(22)
	fallbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func easingTable() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(nameStyle.Render("EASING")+"CSS") + "\n")
	for _, e := range fx.Easings() {
		name, _ := e.MarshalText()
		css := e.CSS()
		if !e.Mapped() {
			css = fallbackStyle.Render(css + " (fallback)")
		}
		b.WriteString(nameStyle.Render(string(name)) + css + "\n")
	}
	return b.String()
}

func kindTable() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(nameStyle.Render("KIND")+"CLASS") + "\n")
	for _, k := range fx.Kinds() {
		name, _ := k.MarshalText()
		b.WriteString(nameStyle.Render(string(name)) + fx.ComputeClass(fx.Config{Kind: k}, true) + "\n")
	}
	return b.String()
}
