package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kmacinski/gridos/internal/layout"
	"github.com/kmacinski/gridos/internal/output"
	"github.com/kmacinski/gridos/internal/wm"
	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List the desktop's predefined windows",
	Args:  cobra.NoArgs,
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
}

// windowEntry is one row of the windows listing
type windowEntry struct {
	wm.Window `yaml:",inline"`
	Geometry  layout.Geometry `yaml:"geometry" json:"geometry"`
}

type windowList []windowEntry

// WriteText renders the windows as a table
func (l windowList) WriteText(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "KIND", "TITLE", "OPEN", "STACK", "GEOMETRY")
	for _, e := range l {
		t.Row(
			e.ID,
			e.Kind.String(),
			e.Title,
			strconv.FormatBool(e.IsOpen),
			strconv.Itoa(e.StackOrder),
			fmt.Sprintf("%d%%,%d%% %dx%d%%", e.Geometry.Left, e.Geometry.Top, e.Geometry.Width, e.Geometry.Height),
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func runWindows(cmd *cobra.Command, args []string) error {
	var list windowList
	for _, win := range wm.DefaultWindows() {
		list = append(list, windowEntry{Window: win, Geometry: layout.DefaultGeometry[win.Kind]})
	}
	return output.Print(cmd.OutOrStdout(), list)
}
