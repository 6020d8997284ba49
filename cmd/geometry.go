package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/fmgr/internal/window"
)

var geometryReset bool

// geometryCmd represents the geometry command
var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Show or reset the stored window geometry",
	Long: `Show the window position and size that the next start restores.
With --reset the stored geometry is removed and the defaults apply again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := window.NewGeometryStore(afero.NewOsFs(), GetConfig().Window.GeometryFile)
		return showGeometry(cmd.OutOrStdout(), store, geometryReset)
	},
}

func init() {
	rootCmd.AddCommand(geometryCmd)

	geometryCmd.Flags().BoolVar(&geometryReset, "reset", false, "remove the stored geometry")
}

// showGeometry prints the geometry kept in store, after removing it when reset is set
func showGeometry(out io.Writer, store *window.GeometryStore, reset bool) error {
	if reset {
		if err := store.Remove(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed %s\n", store.Path())
	}

	g := store.Load()
	fmt.Fprintf(out, "%s (x=%d y=%d width=%d height=%d) from %s\n",
		g, g.X, g.Y, g.Width, g.Height, store.Path())
	return nil
}
