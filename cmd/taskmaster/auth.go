package main

import (
	"errors"
	"fmt"

	"github.com/amonks/taskmaster/internal/config"
	"github.com/amonks/taskmaster/session"
	"github.com/amonks/taskmaster/user"
	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	Args:  cobra.NoArgs,
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password, or with --google",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

var (
	signupName     string
	signupEmail    string
	signupPassword string

	loginEmail    string
	loginPassword string
	loginGoogle   bool

	logoutWipe bool

	whoamiJSON bool
)

func init() {
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)

	signupCmd.Flags().StringVar(&signupName, "name", "", "Display name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Email address")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Password")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	loginCmd.Flags().BoolVar(&loginGoogle, "google", false, "Log in as the mock Google user")

	logoutCmd.Flags().BoolVar(&logoutWipe, "wipe", false, "Also delete the user's task list")

	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "Output as JSON")
}

func runSignup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	created, err := a.users.SignUp(ctx, signupName, signupEmail, signupPassword)
	if err != nil {
		return err
	}
	if err := a.session.Login(ctx, created); err != nil {
		return err
	}

	fmt.Printf("Signed up and logged in as %s\n", formatUser(created))
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	if loginGoogle && hasChangedFlags(cmd, "email", "password") {
		return fmt.Errorf("--google cannot be combined with --email or --password")
	}

	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	var signedIn user.User
	if loginGoogle {
		signedIn = a.users.GoogleUser()
	} else {
		signedIn, err = a.users.Login(ctx, loginEmail, loginPassword)
		if err != nil {
			return err
		}
	}
	if err := a.session.Login(ctx, signedIn); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", formatUser(signedIn))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, func(cfg *config.Config) {
		if logoutWipe {
			cfg.Session.Logout = session.LogoutWipe
		}
	})
	if err != nil {
		return err
	}
	defer a.Close()

	previous, err := a.session.Logout(ctx)
	if errors.Is(err, session.ErrNotAuthenticated) {
		fmt.Println("Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Logged out %s\n", formatUser(previous))
	if a.session.Policy() == session.LogoutWipe {
		fmt.Println("Task list deleted.")
	}
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	current, err := a.requireUser()
	if err != nil {
		return err
	}

	if whoamiJSON {
		return encodeJSONToStdout(current.Public())
	}

	fmt.Println(formatUser(current))
	fmt.Printf("ID:     %s\n", current.ID)
	if current.Image != "" {
		fmt.Printf("Avatar: %s\n", current.Image)
	}
	return nil
}

func formatUser(u user.User) string {
	if u.Name == "" {
		return u.Email
	}
	return fmt.Sprintf("%s <%s>", u.Name, u.Email)
}
