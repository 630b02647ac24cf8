package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"taskdash/internal/application/dto"
)

// registerCmd creates an account and signs in
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create an account on the task store. The store signs you in on success
and the session is kept for later commands.

Examples:
  taskdash register --name Ada --email ada@example.com --password-stdin < pw.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		req, err := credentialsFromFlags(cmd)
		if err != nil {
			return err
		}

		user, err := container.RegisterUseCase.Execute(ctx, req)
		if err != nil {
			return err
		}
		return printUser(user, "Registered and logged in as %s")
	},
}

// loginCmd signs in
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the task store",
	Long: `Log in to the task store. The session cookie is stored under the data
directory and reused until you log out.

Examples:
  taskdash login --email ada@example.com --password secret
  echo secret | taskdash login --email ada@example.com --password-stdin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		req, err := credentialsFromFlags(cmd)
		if err != nil {
			return err
		}

		user, err := container.LoginUseCase.Execute(ctx, req)
		if err != nil {
			return err
		}
		return printUser(user, "Logged in as %s")
	},
}

// logoutCmd ends the session
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		if err := container.LogoutUseCase.Execute(ctx); err != nil {
			return err
		}
		if !formatter.IsText() {
			return formatter.Print(dto.SessionDTO{LoggedIn: false})
		}
		printer.Success("Logged out")
		return nil
	},
}

// whoamiCmd shows the current session
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		session, err := container.GetSessionUseCase.Execute(ctx)
		if err != nil {
			return err
		}

		if !formatter.IsText() {
			return formatter.Print(session)
		}
		if !session.LoggedIn || session.User == nil {
			printer.Info("Not logged in")
			return nil
		}
		printer.KeyValues(userPairs(session.User))
		return nil
	},
}

func credentialsFromFlags(cmd *cobra.Command) (dto.CredentialsRequest, error) {
	var req dto.CredentialsRequest

	if f := cmd.Flags().Lookup("name"); f != nil {
		req.Name = strings.TrimSpace(f.Value.String())
	}
	email, _ := cmd.Flags().GetString("email")
	req.Email = strings.TrimSpace(email)

	password, _ := cmd.Flags().GetString("password")
	fromStdin, _ := cmd.Flags().GetBool("password-stdin")
	if fromStdin {
		if password != "" {
			return req, fmt.Errorf("--password and --password-stdin are mutually exclusive")
		}
		read, err := readPassword(cmd.InOrStdin())
		if err != nil {
			return req, err
		}
		password = read
	}
	req.Password = password

	return req, nil
}

// readPassword reads the first line of r without its line ending
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printUser(user *dto.UserDTO, message string) error {
	if !formatter.IsText() {
		return formatter.Print(user)
	}
	if user == nil {
		printer.Success(message, "unknown user")
		return nil
	}
	printer.Success(message, user.Email)
	return nil
}

func userPairs(user *dto.UserDTO) [][2]string {
	verified := "no"
	if user.IsAccountVerified {
		verified = "yes"
	}
	return [][2]string{
		{"Name", user.Name},
		{"Email", user.Email},
		{"Verified", verified},
	}
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	registerCmd.Flags().String("name", "", "Display name")
	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().String("email", "", "Account email")
		c.Flags().String("password", "", "Account password")
		c.Flags().Bool("password-stdin", false, "Read the password from stdin")
	}
}
