package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/innkeep/internal/domain"
)

func reservationsCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"res"},
		Short:   "Create and manage reservations",
	}

	c.AddCommand(
		reservationsCreateCmd(flags),
		reservationsListCmd(flags),
		reservationsCancelCmd(flags),
		reservationsStatusCmd(flags),
		reservationsRateCmd(flags),
	)
	return c
}

func reservationsCreateCmd(flags *rootFlags) *cobra.Command {
	var f domain.ReservationFields

	c := &cobra.Command{
		Use:   "create",
		Short: "Book a room for a customer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkDate("check-in", f.CheckIn); err != nil {
				return err
			}
			if err := checkDate("check-out", f.CheckOut); err != nil {
				return err
			}

			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			r, err := ws.manager.CreateReservation(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created reservation %s (%s)\n", r.ID, r.Status)
			return nil
		},
	}

	c.Flags().StringVar(&f.CustomerID, "customer", "", "Customer id (required)")
	c.Flags().StringVar(&f.RoomName, "room", "", "Room name (required)")
	c.Flags().StringVar(&f.CheckIn, "check-in", "", "Check-in date")
	c.Flags().StringVar(&f.CheckOut, "check-out", "", "Check-out date")

	_ = c.MarkFlagRequired("customer")
	_ = c.MarkFlagRequired("room")
	return c
}

func reservationsListCmd(flags *rootFlags) *cobra.Command {
	var format, customer string

	c := &cobra.Command{
		Use:   "list",
		Short: "List reservations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			items := ws.manager.Reservations()
			if customer != "" {
				items = ws.manager.ReservationsFor(customer)
			}
			return printList(cmd.OutOrStdout(), format, reservationViews(items), printPrettyReservations)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&customer, "customer", "", "Only reservations of this customer id")
	return c
}

func reservationsCancelCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			r, err := ws.manager.CancelReservation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reservation %s is %s\n", r.ID, r.Status)
			return nil
		},
	}
}

func reservationsStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a reservation's status (pending|postponed|completed|cancelled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			r, err := ws.manager.SetReservationStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reservation %s is %s\n", r.ID, r.Status)
			return nil
		},
	}
}

func reservationsRateCmd(flags *rootFlags) *cobra.Command {
	var rating domain.Rating

	c := &cobra.Command{
		Use:   "rate ID",
		Short: "Rate a stay (replaces any previous rating)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			r, err := ws.manager.RateReservation(cmd.Context(), args[0], rating)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rated reservation %s: %d\n", r.ID, r.Rating.Score)
			return nil
		},
	}

	c.Flags().IntVar(&rating.Score, "score", 0, "Score (required)")
	c.Flags().StringVar(&rating.Comment, "comment", "", "Comment")
	_ = c.MarkFlagRequired("score")
	return c
}
