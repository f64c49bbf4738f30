package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"claimdesk/internal/infrastructure/config"
	"claimdesk/internal/infrastructure/database"
	"claimdesk/internal/infrastructure/migration"
	"claimdesk/internal/shared/logger"
)

var (
	env   string
	steps int
	name  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
		Long:  `Run, roll back, and inspect versioned database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())
	cmd.AddCommand(newDownCommand())
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			return strategy.Migrate(database.Get())
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			if steps < 1 {
				return fmt.Errorf("steps must be at least 1")
			}

			return strategy.MigrateDown(database.Get(), steps)
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			version, err := strategy.GetVersion(database.Get())
			if err != nil {
				return err
			}
			fmt.Printf("Current migration version: %d\n", version)

			return strategy.Status(database.Get())
		},
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration script",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("migration name is required (use --name)")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			scriptsPath, err := scriptsDir()
			if err != nil {
				return err
			}

			strategy := migration.NewGooseStrategy(scriptsPath, cfg.Database.Driver)
			if err := strategy.Create(name); err != nil {
				return err
			}

			fmt.Printf("Created migration: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	return cmd
}

// initEnv loads config, sets up logging and the database connection, and
// returns a goose strategy pointed at the migration scripts.
func initEnv() (*migration.GooseStrategy, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := scriptsDir()
	if err != nil {
		return nil, err
	}

	return migration.NewGooseStrategy(scriptsPath, cfg.Database.Driver), nil
}

func loadConfig() (*config.Config, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func scriptsDir() (string, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "", fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}
	return scriptsPath, nil
}
