package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/innkeep/internal/infra/jsonstore"
)

func exportCmd(flags *rootFlags) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "export",
		Short: "Write the store with secrets masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			snap := ws.manager.Snapshot()

			if strings.TrimSpace(out) == "" {
				return jsonstore.Export(cmd.OutOrStdout(), snap)
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := jsonstore.Export(f, snap); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			ws.log.Info("store.exported", "path", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return c
}
