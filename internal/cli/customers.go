package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/innkeep/internal/domain"
)

func customersCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "customers",
		Short: "Register, list and log in customers",
	}

	c.AddCommand(customersRegisterCmd(flags), customersListCmd(flags), customersLoginCmd(flags))
	return c
}

func customersRegisterCmd(flags *rootFlags) *cobra.Command {
	var f domain.CustomerFields

	c := &cobra.Command{
		Use:   "register",
		Short: "Register a customer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkEmail(f.Email); err != nil {
				return err
			}
			if err := checkDate("birth-date", f.BirthDate); err != nil {
				return err
			}

			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			cu, err := ws.manager.RegisterCustomer(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered customer %s\n", cu.ID)
			return nil
		},
	}

	c.Flags().StringVar(&f.Name, "name", "", "Full name")
	c.Flags().StringVar(&f.BirthDate, "birth-date", "", "Birth date (YYYY-MM-DD or DD/MM/YYYY)")
	c.Flags().StringVar(&f.NationalID, "national-id", "", "National id (punctuation is stripped)")
	c.Flags().StringVar(&f.Email, "email", "", "Email (required)")
	c.Flags().StringVar(&f.Secret, "secret", "", "Password (required)")

	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("secret")
	return c
}

func customersListCmd(flags *rootFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			return printList(cmd.OutOrStdout(), format, customerViews(ws.manager.Customers()), printPrettyCustomers)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func customersLoginCmd(flags *rootFlags) *cobra.Command {
	var identifier, secret string

	c := &cobra.Command{
		Use:   "login",
		Short: "Check a customer's credentials (email or national id)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			cu, err := ws.manager.AuthenticateCustomer(cmd.Context(), identifier, secret)
			if err != nil {
				return errLoginFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s (%s)\n", cu.Name, cu.ID)
			return nil
		},
	}

	c.Flags().StringVar(&identifier, "id", "", "Email or national id (required)")
	c.Flags().StringVar(&secret, "secret", "", "Password (required)")
	_ = c.MarkFlagRequired("id")
	_ = c.MarkFlagRequired("secret")
	return c
}
