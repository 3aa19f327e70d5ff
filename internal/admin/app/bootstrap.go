package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/internal/admin/service"
	"github.com/intlakaa/backoffice/internal/admin/store"
	"github.com/intlakaa/backoffice/internal/admin/store/drivers/sqlite"
	"github.com/intlakaa/backoffice/pkg/cryptox"
	"github.com/intlakaa/backoffice/pkg/idx"
)

// CreateOwner is the one-shot bootstrap mode: it prompts for the owner's
// details on the terminal and writes the identity directly, bypassing the
// invite flow. Meant to run once against a fresh database.
func CreateOwner(cfg Config, in io.Reader, out io.Writer) error {
	cryptox.SetPepperPath(cfg.PepperFile)

	db, err := sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	reader := bufio.NewReader(in)
	prompt := func(label string) (string, error) {
		fmt.Fprintf(out, "%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	name, err := prompt("Owner name")
	if err != nil {
		return err
	}
	email, err := prompt("Owner email")
	if err != nil {
		return err
	}
	password, err := prompt("Owner password")
	if err != nil {
		return err
	}

	ctx := context.Background()
	admin, err := createOwnerIdentity(ctx, db, name, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "owner account created: %s <%s>\n", admin.Name, admin.Email)
	return nil
}

// seedOwner creates the owner identity from OWNER_* environment settings when
// the database has no identities yet. This is the non-interactive counterpart
// of CreateOwner for container deployments.
func (app *Application) seedOwner() error {
	if app.cfg.OwnerEmail == "" || app.cfg.OwnerPassword == "" {
		return nil
	}

	ctx := context.Background()
	empty, err := app.db.Admins().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing identities: %w", err)
	}
	if !empty {
		return nil
	}

	name := app.cfg.OwnerName
	if name == "" {
		name = "Owner"
	}
	admin, err := createOwnerIdentity(ctx, app.db, name, app.cfg.OwnerEmail, app.cfg.OwnerPassword)
	if err != nil {
		return fmt.Errorf("failed to seed owner identity: %w", err)
	}

	app.logger.Info("owner identity seeded", "email", admin.Email)
	return nil
}

func createOwnerIdentity(ctx context.Context, db store.Store, name, email, password string) (domain.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return domain.Admin{}, errors.New("name and email are required")
	}
	if len(password) < service.MinPasswordLength {
		return domain.Admin{}, fmt.Errorf("password must be at least %d characters", service.MinPasswordLength)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Admin{}, err
	}

	now := time.Now().UTC()
	admin := domain.Admin{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Admins().CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Admin{}, fmt.Errorf("an admin with email %s already exists", email)
		}
		return domain.Admin{}, err
	}
	return admin, nil
}
