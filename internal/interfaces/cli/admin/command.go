package admin

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"veil/internal/application/admin/dto"
	"veil/internal/application/admin/usecases"
	"veil/internal/infrastructure/auth"
	"veil/internal/infrastructure/config"
	"veil/internal/infrastructure/database"
	"veil/internal/infrastructure/repository"
	"veil/internal/shared/logger"
)

var (
	env      string
	username string
	isSudo   bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin account tools",
		Long:  `Manage admin accounts from the command line.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		Long:  `Create an admin account, prompting for the password on the terminal.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Admin username (required)")
	cmd.Flags().BoolVar(&isSudo, "sudo", false, "Grant sudo privileges")
	cmd.MarkFlagRequired("username")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := readPassword()
	if err != nil {
		return err
	}

	log := logger.NewLogger()
	adminRepo := repository.NewAdminRepository(database.Get(), log)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	createUC := usecases.NewCreateAdminUseCase(adminRepo, hasher, log)

	result, err := createUC.Execute(cmd.Context(), dto.CreateAdminRequest{
		Username: username,
		Password: password,
		IsSudo:   isSudo,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Printf("admin %q created (sudo: %t)\n", result.Username, result.IsSudo)
	return nil
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}

	return string(password), nil
}
