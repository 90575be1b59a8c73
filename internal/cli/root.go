package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/innkeep/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "innkeep",
		Short:        "innkeep — hotel records for a single front desk",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			return tui.Run(tui.Deps{
				Manager:   ws.manager,
				Root:      ws.root,
				StorePath: ws.store.Path(),
				Logger:    ws.log,
				Debug:     ws.debug,
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	pf.StringVar(&flags.store, "store", "", "Path to the JSON store (overrides innkeep.store.path)")
	pf.BoolVar(&flags.debug, "debug", false, "enable verbose logging to .innkeep/logs/innkeep.log")

	cmd.AddCommand(
		initCmd(),
		customersCmd(flags),
		staffCmd(flags),
		roomsCmd(flags),
		reservationsCmd(flags),
		queryCmd(flags),
		exportCmd(flags),
		versionCmd(),
	)
	return cmd
}
