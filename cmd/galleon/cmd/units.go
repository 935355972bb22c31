package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/galleon/pkg/length"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "Zeigt alle bekannten Einheiten",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Einheiten")
			fmt.Fprintln(out, "=========")
			fmt.Fprintln(out)

			for _, name := range length.UnitNames() {
				unit, _ := length.LookupUnit(name)
				fmt.Fprintf(out, "  %-13s %-19s %s\n", name, unit, unit.System())
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, `Brüche wie 1/2 oder 3\8 zählen als Zoll (Nenner 2, 4, 8, 16, 32, 64).`)
			return nil
		},
	}
}
