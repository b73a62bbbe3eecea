// cmd/storefront/cmd_auth.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

var (
	authEmail     string
	authPassword  string
	authUsername  string
	authFirstName string
	authLastName  string
	authPhone     string

	currentPassword string
	newPassword     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and store the session",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update the logged-in user's profile",
	RunE:  runProfile,
}

var changePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the logged-in user's password",
	RunE:  runChangePassword,
}

func init() {
	loginCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&authPassword, "password", "", "Account password")
	registerCmd.Flags().StringVar(&authUsername, "username", "", "Username")
	registerCmd.Flags().StringVar(&authFirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&authLastName, "last-name", "", "Last name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("username")

	profileCmd.Flags().StringVar(&authUsername, "username", "", "Username")
	profileCmd.Flags().StringVar(&authFirstName, "first-name", "", "First name")
	profileCmd.Flags().StringVar(&authLastName, "last-name", "", "Last name")
	profileCmd.Flags().StringVar(&authPhone, "phone", "", "Phone number")

	changePasswordCmd.Flags().StringVar(&currentPassword, "current", "", "Current password")
	changePasswordCmd.Flags().StringVar(&newPassword, "new", "", "New password")
	changePasswordCmd.MarkFlagRequired("current")
	changePasswordCmd.MarkFlagRequired("new")
}

func runLogin(cmd *cobra.Command, args []string) error {
	user, err := shop.client.Login(cmd.Context(), api.LoginRequest{
		Email:    authEmail,
		Password: authPassword,
	})
	if err != nil {
		return err
	}

	if user != nil {
		fmt.Printf("Logged in as %s\n", user.Email)
	} else {
		fmt.Println("Logged in")
	}
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	user, err := shop.client.Register(cmd.Context(), api.RegisterRequest{
		Email:     authEmail,
		Username:  authUsername,
		Password:  authPassword,
		FirstName: authFirstName,
		LastName:  authLastName,
	})
	if err != nil {
		return err
	}

	if user != nil {
		fmt.Printf("Registered and logged in as %s\n", user.Email)
	} else {
		fmt.Println("Registered")
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := shop.client.Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	if !shop.session.IsAuthenticated(cmd.Context()) {
		fmt.Println("Not logged in")
		return nil
	}

	// Prefer the server's view, fall back to the stored profile
	user, err := shop.client.CurrentUser(cmd.Context())
	if err != nil {
		user = shop.session.User(cmd.Context())
	}
	if user == nil {
		fmt.Println("Logged in (no profile stored)")
		return nil
	}

	fmt.Printf("%s (%s)", user.Username, user.Email)
	if user.IsAdmin {
		fmt.Print(" [admin]")
	}
	fmt.Println()
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	// Only flags the caller passed are sent, so unset fields keep their
	// server-side values
	fields := make(map[string]interface{})
	if cmd.Flags().Changed("username") {
		fields["username"] = authUsername
	}
	if cmd.Flags().Changed("first-name") {
		fields["first_name"] = authFirstName
	}
	if cmd.Flags().Changed("last-name") {
		fields["last_name"] = authLastName
	}
	if cmd.Flags().Changed("phone") {
		fields["phone"] = authPhone
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to update: pass at least one of --username, --first-name, --last-name, --phone")
	}

	user, err := shop.client.UpdateProfile(cmd.Context(), fields)
	if err != nil {
		return err
	}

	if user != nil {
		fmt.Printf("Profile updated for %s\n", user.Email)
	} else {
		fmt.Println("Profile updated")
	}
	return nil
}

func runChangePassword(cmd *cobra.Command, args []string) error {
	if err := shop.client.ChangePassword(cmd.Context(), currentPassword, newPassword); err != nil {
		return err
	}
	fmt.Println("Password changed")
	return nil
}
