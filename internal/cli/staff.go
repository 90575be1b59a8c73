package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/innkeep/internal/domain"
)

var errLoginFailed = errors.New("invalid credentials")

func staffCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "staff",
		Short: "Register, list and log in staff members",
	}

	c.AddCommand(staffRegisterCmd(flags), staffListCmd(flags), staffLoginCmd(flags))
	return c
}

func staffRegisterCmd(flags *rootFlags) *cobra.Command {
	var f domain.StaffFields

	c := &cobra.Command{
		Use:   "register",
		Short: "Register a staff member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkEmail(f.Email); err != nil {
				return err
			}

			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			st, err := ws.manager.RegisterStaff(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered staff %s\n", st.ID)
			return nil
		},
	}

	c.Flags().StringVar(&f.Username, "username", "", "Username (required)")
	c.Flags().StringVar(&f.NationalID, "national-id", "", "National id (punctuation is stripped)")
	c.Flags().StringVar(&f.Email, "email", "", "Email")
	c.Flags().StringVar(&f.Secret, "secret", "", "Password (required)")

	_ = c.MarkFlagRequired("username")
	_ = c.MarkFlagRequired("secret")
	return c
}

func staffListCmd(flags *rootFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List staff members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			return printList(cmd.OutOrStdout(), format, staffViews(ws.manager.StaffMembers()), printPrettyStaff)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func staffLoginCmd(flags *rootFlags) *cobra.Command {
	var identifier, secret string

	c := &cobra.Command{
		Use:   "login",
		Short: "Check a staff member's credentials (username or email)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer ws.Close()

			st, err := ws.manager.AuthenticateStaff(cmd.Context(), identifier, secret)
			if err != nil {
				return errLoginFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s (%s)\n", st.Username, st.ID)
			return nil
		},
	}

	c.Flags().StringVar(&identifier, "id", "", "Username or email (required)")
	c.Flags().StringVar(&secret, "secret", "", "Password (required)")
	_ = c.MarkFlagRequired("id")
	_ = c.MarkFlagRequired("secret")
	return c
}

// checkEmail applies the loose format check at the input surface. Empty is
// allowed; the manager itself stores whatever it is given.
func checkEmail(email string) error {
	if strings.TrimSpace(email) == "" || domain.ValidEmail(email) {
		return nil
	}
	return fmt.Errorf("invalid email %q", email)
}

func checkDate(flag, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, ok := domain.ParseDate(value); !ok {
		return fmt.Errorf("invalid --%s %q (expected YYYY-MM-DD or DD/MM/YYYY)", flag, value)
	}
	return nil
}
