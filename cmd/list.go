package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/fmgr/internal/config"
	"github.com/HaiFongPan/fmgr/internal/files"
	"github.com/HaiFongPan/fmgr/internal/tui"
)

var (
	listAll     bool
	listSummary bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "Print the rows of a directory",
	Long: `Print a directory the way the browser shows it, as aligned rows of
name, type, size, modification and creation date.

Examples:
  fmgr list                # List the start directory
  fmgr list /var/log       # List another directory
  fmgr list --all          # Include hidden files
  fmgr list --summary=false # Rows only`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		return listDirectory(cmd.OutOrStdout(), afero.NewOsFs(), cfg, startDirectory(cfg, args))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include hidden files")
	listCmd.Flags().BoolVar(&listSummary, "summary", true, "print a summary line after the rows")
}

// listDirectory writes the column titles and the aligned rows of dir to out
func listDirectory(out io.Writer, fsys afero.Fs, cfg *config.Config, dir string) error {
	manager := files.NewManager(fsys, dir)
	manager.SetShowHidden(listAll || cfg.UI.ShowHidden)

	names, err := manager.List()
	if err != nil {
		return err
	}

	logrus.Debugf("Listing %d entries of %s", len(names), manager.Dir())

	inspector := files.NewInspector(fsys)
	rows := make([]*tui.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, tui.NewRow(inspector, manager.Dir(), name, cfg.UI.DateFormat))
	}
	widths := tui.AlignColumns(rows, tui.TitleWidths())

	fmt.Fprintln(out, strings.TrimRight(tui.HeaderLine(widths), " "))
	var folders, regular int
	var total uint64
	for _, row := range rows {
		fmt.Fprintln(out, strings.TrimRight(row.PlainView(), " "))
		if row.IsDir() {
			folders++
			continue
		}
		regular++
		if size := row.Metadata().Size; size.Ok() {
			total += size.Value
		}
	}

	if listSummary {
		fmt.Fprintf(out, "\n%s, %s, %s\n",
			plural(folders, "folder"), plural(regular, "file"), humanize.Bytes(total))
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), word)
	}
	return fmt.Sprintf("%s %ss", humanize.Comma(int64(n)), word)
}
