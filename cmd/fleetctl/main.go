// cmd/fleetctl/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/config"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/repository"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

func main() {
	root := &cobra.Command{
		Use:   "fleetctl",
		Short: "Operations tooling for the fleet management backend",
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(createOrgCmd())
	root.AddCommand(hashPasswordCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDatabase() (*gorm.DB, error) {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}

			err = db.AutoMigrate(
				&model.Organization{},
				&model.User{},
				&model.Team{},
				&model.TeamMember{},
				&model.Vehicle{},
				&model.Maintenance{},
				&model.Material{},
				&model.Penalty{},
				&model.Expense{},
				&model.RentalContract{},
				&model.BugReport{},
				&model.ActionLog{},
			)
			if err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}

			fmt.Println("schema is up to date")
			return nil
		},
	}
}

func createOrgCmd() *cobra.Command {
	var (
		name      string
		email     string
		password  string
		firstName string
		lastName  string
	)

	cmd := &cobra.Command{
		Use:   "create-org",
		Short: "Create an organization with its owner account",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}

			orgRepo := repository.NewOrganizationRepository(db)
			orgService := service.NewOrganizationService(
				orgRepo, auth.NewPasswordHasher(), nil, config.Load())

			output, err := orgService.Register(cmd.Context(), service.RegisterInput{
				OrganizationName: name,
				Email:            email,
				Password:         password,
				ConfirmPassword:  password,
				FirstName:        firstName,
				LastName:         lastName,
			})
			if err != nil {
				return fmt.Errorf("creating organization: %w", err)
			}

			fmt.Printf("organization %s created, owner %s\n",
				output.Organization.ID, output.Owner.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "organization name")
	cmd.Flags().StringVar(&email, "email", "", "owner email address")
	cmd.Flags().StringVar(&password, "password", "", "owner password")
	cmd.Flags().StringVar(&firstName, "first-name", "", "owner first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "owner last name")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("first-name")

	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the hash for a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.NewPasswordHasher().Hash(args[0])
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}
			fmt.Println(hash)
			return nil
		},
	}
}
