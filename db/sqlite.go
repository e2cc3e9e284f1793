package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"commandapi/model"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a Store on a sqlite database file, through database/sql.
type SQLite struct {
	conn *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// a ":memory:" database lives and dies with its connection
	conn.SetMaxOpenConns(1)

	db := &SQLite{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *SQLite) migrate() error {
	_, err := d.conn.Exec(`
		CREATE TABLE IF NOT EXISTS commands (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			how_to TEXT NOT NULL,
			platform TEXT NOT NULL,
			command_line TEXT NOT NULL
		);
	`)
	return err
}

func (d *SQLite) Close() error {
	return d.conn.Close()
}

func (d *SQLite) List(ctx context.Context) ([]model.Command, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, how_to, platform, command_line
		FROM commands
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	defer rows.Close()

	commands := []model.Command{}
	for rows.Next() {
		var c model.Command
		if err := rows.Scan(&c.ID, &c.HowTo, &c.Platform, &c.CommandLine); err != nil {
			return nil, fmt.Errorf("list commands: %w", err)
		}
		commands = append(commands, c)
	}
	return commands, rows.Err()
}

func (d *SQLite) Find(ctx context.Context, id int64) (model.Command, bool, error) {
	var c model.Command
	err := d.conn.QueryRowContext(
		ctx,
		`SELECT id, how_to, platform, command_line FROM commands WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.HowTo, &c.Platform, &c.CommandLine)
	if err == sql.ErrNoRows {
		return model.Command{}, false, nil
	}
	if err != nil {
		return model.Command{}, false, fmt.Errorf("find command %d: %w", id, err)
	}
	return c, true, nil
}

func (d *SQLite) Add(ctx context.Context, cmd model.Command) (int64, error) {
	result, err := d.conn.ExecContext(
		ctx,
		`INSERT INTO commands (how_to, platform, command_line) VALUES (?, ?, ?)`,
		cmd.HowTo, cmd.Platform, cmd.CommandLine,
	)
	if err != nil {
		return 0, fmt.Errorf("add command: %w", err)
	}
	return result.LastInsertId()
}

func (d *SQLite) Update(ctx context.Context, id int64, cmd model.Command) error {
	result, err := d.conn.ExecContext(
		ctx,
		`UPDATE commands SET how_to = ?, platform = ?, command_line = ? WHERE id = ?`,
		cmd.HowTo, cmd.Platform, cmd.CommandLine, id,
	)
	if err != nil {
		return fmt.Errorf("update command %d: %w", id, err)
	}
	return affectedOne(result, id)
}

func (d *SQLite) Remove(ctx context.Context, id int64) error {
	result, err := d.conn.ExecContext(ctx, `DELETE FROM commands WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove command %d: %w", id, err)
	}
	return affectedOne(result, id)
}

func affectedOne(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("command %d: %w", id, ErrMissing)
	}
	return nil
}
