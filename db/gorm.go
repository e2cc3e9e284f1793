package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"commandapi/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Gorm is a Store mapped onto a relational database by gorm.
type Gorm struct {
	db *gorm.DB
}

// NewGorm opens dsn with the gorm dialect named by dialect ("sqlite" or
// "postgres") and migrates the commands table.
//
// SQL statements slower than 200ms, and SQL errors, go to log at warn level.
func NewGorm(dialect, dsn string, log *slog.Logger) (*Gorm, error) {
	var dialector gorm.Dialector
	switch dialect {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown gorm dialect: %q", dialect)
	}

	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	g, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(
			slog.NewLogLogger(log.Handler(), slog.LevelWarn),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}

	if dialect == "sqlite" {
		sqlDB, err := g.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := g.AutoMigrate(&model.Command{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Gorm{db: g}, nil
}

func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (g *Gorm) List(ctx context.Context) ([]model.Command, error) {
	commands := []model.Command{}
	if err := g.db.WithContext(ctx).Order("id").Find(&commands).Error; err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	return commands, nil
}

func (g *Gorm) Find(ctx context.Context, id int64) (model.Command, bool, error) {
	var c model.Command
	err := g.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Command{}, false, nil
	}
	if err != nil {
		return model.Command{}, false, fmt.Errorf("find command %d: %w", id, err)
	}
	return c, true, nil
}

func (g *Gorm) Add(ctx context.Context, cmd model.Command) (int64, error) {
	cmd.ID = 0
	if err := g.db.WithContext(ctx).Create(&cmd).Error; err != nil {
		return 0, fmt.Errorf("add command: %w", err)
	}
	return cmd.ID, nil
}

func (g *Gorm) Update(ctx context.Context, id int64, cmd model.Command) error {
	// a map, unlike a struct, also writes empty strings
	res := g.db.WithContext(ctx).
		Model(&model.Command{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"how_to":       cmd.HowTo,
			"platform":     cmd.Platform,
			"command_line": cmd.CommandLine,
		})
	if res.Error != nil {
		return fmt.Errorf("update command %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("command %d: %w", id, ErrMissing)
	}
	return nil
}

func (g *Gorm) Remove(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Delete(&model.Command{}, id)
	if res.Error != nil {
		return fmt.Errorf("remove command %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("command %d: %w", id, ErrMissing)
	}
	return nil
}
