package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/innkeep/internal/domain"
)

func roomsCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "rooms",
		Short: "Manage rooms",
	}

	c.AddCommand(roomsAddCmd(flags), roomsListCmd(flags), roomsEditCmd(flags), roomsDeleteCmd(flags))
	return c
}

func roomsAddCmd(flags *rootFlags) *cobra.Command {
	var f domain.RoomFields

	c := &cobra.Command{
		Use:   "add",
		Short: "Add a room",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkPrice(f.PricePerNight); err != nil {
				return err
			}

			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			r, err := ws.manager.RegisterRoom(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added room %q (%s)\n", r.Name, r.ID)
			return nil
		},
	}

	c.Flags().StringVar(&f.Name, "name", "", "Room name, unique (required)")
	c.Flags().StringVar(&f.Description, "description", "", "Description")
	c.Flags().IntVar(&f.BedCount, "beds", 0, "Number of beds")
	c.Flags().Float64Var(&f.PricePerNight, "price", 0, "Price per night")
	c.Flags().IntVar(&f.AvailableQuantity, "available", 0, "Rooms of this type available")

	_ = c.MarkFlagRequired("name")
	return c
}

func roomsListCmd(flags *rootFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			return printList(cmd.OutOrStdout(), format, roomViews(ws.manager.Rooms()), printPrettyRooms)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func roomsEditCmd(flags *rootFlags) *cobra.Command {
	var (
		name      string
		newName   string
		desc      string
		beds      int
		price     float64
		available int
	)

	c := &cobra.Command{
		Use:   "edit NAME",
		Short: "Edit a room; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name = args[0]

			var patch domain.RoomPatch
			fl := cmd.Flags()
			if fl.Changed("name") {
				patch.Name = &newName
			}
			if fl.Changed("description") {
				patch.Description = &desc
			}
			if fl.Changed("beds") {
				patch.BedCount = &beds
			}
			if fl.Changed("price") {
				if err := checkPrice(price); err != nil {
					return err
				}
				patch.PricePerNight = &price
			}
			if fl.Changed("available") {
				patch.AvailableQuantity = &available
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change (use --name, --description, --beds, --price or --available)")
			}

			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			r, err := ws.manager.EditRoom(cmd.Context(), name, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated room %q\n", r.Name)
			return nil
		},
	}

	c.Flags().StringVar(&newName, "name", "", "New name")
	c.Flags().StringVar(&desc, "description", "", "New description")
	c.Flags().IntVar(&beds, "beds", 0, "New bed count")
	c.Flags().Float64Var(&price, "price", 0, "New price per night")
	c.Flags().IntVar(&available, "available", 0, "New available quantity")
	return c
}

func roomsDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete every room with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			n, err := ws.manager.DeleteRoom(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d room(s) named %q\n", n, args[0])
			return nil
		},
	}
}

// checkPrice rejects what the store cannot encode (NaN, ±Inf) along with
// negative prices.
func checkPrice(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return fmt.Errorf("invalid --price %v (expected a non-negative number)", p)
	}
	return nil
}
