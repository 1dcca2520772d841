package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/kmacinski/gridos/internal/gateway"
	"github.com/kmacinski/gridos/internal/output"
	"github.com/kmacinski/gridos/internal/window"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <command...>",
	Short: "Run one kernel terminal command without the desktop",
	Long: "Send a command to the kernel terminal backend and print the answer. " +
		"Real-world questions are grounded with web search.",
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Run a grid search without the desktop",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(searchCmd)
}

// answer is a gateway response as printed by ask and search
type answer struct {
	gateway.Response `yaml:",inline"`
	hosts            bool
}

// WriteText prints the text, then either the source hostnames or a numbered source list
func (a answer) WriteText(w io.Writer) error {
	var b strings.Builder
	b.WriteString(a.Text)
	b.WriteString("\n")
	if len(a.Sources) > 0 {
		if a.hosts {
			if hosts := window.Hostnames(a.Sources); len(hosts) > 0 {
				fmt.Fprintf(&b, "\n[ SOURCES: %s ]\n", strings.Join(hosts, ", "))
			}
		} else {
			b.WriteString("\nSources:\n")
			for i, s := range a.Sources {
				fmt.Fprintf(&b, "  [%d] %s - %s\n", i+1, s.Title, s.URI)
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func runAsk(cmd *cobra.Command, args []string) error {
	command := strings.Join(args, " ")
	resp := newGateway().ExecuteCommand(cmd.Context(), command, cfg.Gateway.Context)
	return output.Print(cmd.OutOrStdout(), answer{Response: resp, hosts: true})
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	resp := newGateway().Search(cmd.Context(), query)
	return output.Print(cmd.OutOrStdout(), answer{Response: resp})
}
