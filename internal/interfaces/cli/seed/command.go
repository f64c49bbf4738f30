package seed

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"claimdesk/internal/domain/directory"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/infrastructure/auth"
	"claimdesk/internal/infrastructure/config"
	"claimdesk/internal/infrastructure/database"
	"claimdesk/internal/infrastructure/repository"
	apperrors "claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

var (
	env      string
	filePath string
)

type fixture struct {
	Statuses []struct {
		Name         string  `yaml:"name"`
		Color        string  `yaml:"color"`
		DisplayOrder int     `yaml:"display_order"`
		Description  *string `yaml:"description"`
		Area         *string `yaml:"area"`
		SubStatuses  []struct {
			Name         string  `yaml:"name"`
			DisplayOrder int     `yaml:"display_order"`
			Description  *string `yaml:"description"`
		} `yaml:"sub_statuses"`
	} `yaml:"statuses"`

	Transitions []struct {
		From                 string   `yaml:"from"`
		To                   string   `yaml:"to"`
		RequiredRoles        []string `yaml:"required_roles"`
		RequiresConfirmation bool     `yaml:"requires_confirmation"`
		Message              *string  `yaml:"message"`
	} `yaml:"transitions"`

	Admin *struct {
		Name     string  `yaml:"name"`
		Email    string  `yaml:"email"`
		Area     *string `yaml:"area"`
		Password string  `yaml:"password"`
	} `yaml:"admin"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with an initial workflow catalog",
		Long:  `Load statuses, sub-statuses, transitions, and an admin user from a YAML fixture. Existing records are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "configs/seed.yaml", "Path to the seed fixture")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger().With("component", "seed")

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read seed fixture: %w", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("failed to parse seed fixture: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	ctx := cmd.Context()
	statusRepo := repository.NewStatusRepository(database.Get())
	subStatusRepo := repository.NewSubStatusRepository(database.Get())
	transitionRepo := repository.NewTransitionRepository(database.Get())
	users := repository.NewUserDirectory(database.Get())

	statusIDs, err := seedStatuses(ctx, &fx, statusRepo, subStatusRepo, log)
	if err != nil {
		return err
	}

	if err := seedTransitions(ctx, &fx, statusIDs, transitionRepo, log); err != nil {
		return err
	}

	if fx.Admin != nil {
		hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
		if err := seedAdmin(ctx, &fx, users, hasher, log); err != nil {
			return err
		}
	}

	log.Infow("seeding completed")
	return nil
}

func seedStatuses(
	ctx context.Context,
	fx *fixture,
	statusRepo *repository.StatusRepository,
	subStatusRepo *repository.SubStatusRepository,
	log logger.Interface,
) (map[string]uint, error) {
	statusIDs := make(map[string]uint, len(fx.Statuses))

	for _, entry := range fx.Statuses {
		existing, err := statusRepo.GetByName(ctx, entry.Name)
		if err == nil {
			log.Infow("status already exists, skipping", "name", entry.Name)
			statusIDs[entry.Name] = existing.ID()
			continue
		}
		if !apperrors.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to check status %q: %w", entry.Name, err)
		}

		s, err := status.NewStatus(entry.Name, entry.Color, entry.DisplayOrder, entry.Description, entry.Area, nil)
		if err != nil {
			return nil, fmt.Errorf("invalid status %q: %w", entry.Name, err)
		}
		if err := statusRepo.Save(ctx, s); err != nil {
			return nil, fmt.Errorf("failed to save status %q: %w", entry.Name, err)
		}
		statusIDs[entry.Name] = s.ID()
		log.Infow("status created", "name", entry.Name, "status_id", s.ID())

		for _, sub := range entry.SubStatuses {
			ss, err := status.NewSubStatus(s.ID(), sub.Name, sub.DisplayOrder, sub.Description)
			if err != nil {
				return nil, fmt.Errorf("invalid sub-status %q of %q: %w", sub.Name, entry.Name, err)
			}
			if err := subStatusRepo.Save(ctx, ss); err != nil {
				return nil, fmt.Errorf("failed to save sub-status %q: %w", sub.Name, err)
			}
			log.Infow("sub-status created", "name", sub.Name, "status", entry.Name)
		}
	}

	return statusIDs, nil
}

func seedTransitions(
	ctx context.Context,
	fx *fixture,
	statusIDs map[string]uint,
	transitionRepo *repository.TransitionRepository,
	log logger.Interface,
) error {
	for _, entry := range fx.Transitions {
		fromID, ok := statusIDs[entry.From]
		if !ok {
			return fmt.Errorf("transition references unknown status %q", entry.From)
		}
		toID, ok := statusIDs[entry.To]
		if !ok {
			return fmt.Errorf("transition references unknown status %q", entry.To)
		}

		if _, err := transitionRepo.GetByEdge(ctx, fromID, toID); err == nil {
			log.Infow("transition already exists, skipping", "from", entry.From, "to", entry.To)
			continue
		} else if !apperrors.IsNotFoundError(err) {
			return fmt.Errorf("failed to check transition %s -> %s: %w", entry.From, entry.To, err)
		}

		t, err := status.NewTransition(fromID, toID, entry.RequiredRoles, entry.RequiresConfirmation, entry.Message)
		if err != nil {
			return fmt.Errorf("invalid transition %s -> %s: %w", entry.From, entry.To, err)
		}
		if err := transitionRepo.Save(ctx, t); err != nil {
			return fmt.Errorf("failed to save transition %s -> %s: %w", entry.From, entry.To, err)
		}
		log.Infow("transition created", "from", entry.From, "to", entry.To)
	}

	return nil
}

func seedAdmin(
	ctx context.Context,
	fx *fixture,
	users *repository.UserDirectory,
	hasher *auth.BcryptPasswordHasher,
	log logger.Interface,
) error {
	if _, err := users.GetByEmail(ctx, fx.Admin.Email); err == nil {
		log.Infow("admin user already exists, skipping", "email", fx.Admin.Email)
		return nil
	} else if !apperrors.IsNotFoundError(err) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	password := fx.Admin.Password
	if password == "" {
		fmt.Printf("Password for %s: ", fx.Admin.Email)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	}
	if len(password) < 8 {
		return fmt.Errorf("admin password must be at least 8 characters")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := directory.NewUser(fx.Admin.Name, fx.Admin.Email, fx.Admin.Area, "admin", hash)
	if err != nil {
		return fmt.Errorf("invalid admin user: %w", err)
	}
	if err := users.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to save admin user: %w", err)
	}

	log.Infow("admin user created", "email", fx.Admin.Email)
	return nil
}
