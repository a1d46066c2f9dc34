package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

func newRegisterCmd(app *app) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a local profile and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := app.session.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Bienvenue, %s ! Profil créé pour %s.\n", identity.Name, identity.Email)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (6 characters minimum)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with any well-formed credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := app.session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Connecté en tant que %s (%s).\n", identity.Name, identity.Email)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (6 characters minimum)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Déconnecté. À bientôt !")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Restore(cmd.Context()); err != nil {
				return err
			}

			identity, ok := app.session.Current()
			if !ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Non connecté.")
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", identity.Name, identity.Email)
			return err
		},
	}
}

// requireIdentity restores the session and fails when nobody is signed in.
func requireIdentity(cmd *cobra.Command, app *app) (domain.Identity, error) {
	if err := app.session.Restore(cmd.Context()); err != nil {
		return domain.Identity{}, err
	}

	identity, ok := app.session.Current()
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: run \"cpn login\" first", domain.ErrNotLoggedIn)
	}

	return identity, nil
}
