package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/innkeep/internal/infra/jsonstore"
	"github.com/aalvaropc/innkeep/internal/usecase/query"
)

func queryCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "query EXPR",
		Short: "Run a JSONPath expression against the store (secrets masked)",
		Example: `  innkeep query '$.rooms[*].name'
  innkeep query '$.reservations[?(@.status=="pending")].id'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			doc, err := jsonstore.Encode(ws.manager.Snapshot(), true)
			if err != nil {
				return err
			}

			v, err := query.Evaluate(doc, args[0])
			if err != nil {
				return err
			}

			out, err := query.Format(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
