package sqlstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"smartInvite/internal/config"
	"smartInvite/internal/models"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

const (
	driverMySQL  = "mysql"
	driverSQLite = "sqlite3"
)

type Storage struct {
	DB     *sql.DB
	driver string
}

func InitDB(log *slog.Logger, cfg *config.Config) (*Storage, error) {
	var driver, dsn string

	if cfg.UseMySQL() {
		driver = driverMySQL
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
		)
	} else {
		driver = driverSQLite

		if err := os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}

		dsn = fmt.Sprintf("file:%s?_foreign_keys=on", cfg.Database.SQLitePath)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if driver == driverMySQL {
		db.SetMaxOpenConns(cfg.Database.PoolSize)
	} else {
		// the embedded store serializes all access through a single handle
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db, driver: driver}

	if err = s.createSchema(); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if err = s.migrate(log); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Info("storage initialized", slog.String("driver", driver))

	return s, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) createSchema() error {
	var stmts []string

	if s.driver == driverMySQL {
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS events (
				id INT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				description TEXT,
				message TEXT,
				photos JSON,
				location VARCHAR(500),
				date DATETIME,
				custom_images JSON,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS guests (
				id INT AUTO_INCREMENT PRIMARY KEY,
				event_id INT,
				name VARCHAR(255) NOT NULL,
				token VARCHAR(255) UNIQUE NOT NULL,
				confirmed BOOLEAN DEFAULT FALSE,
				num_people INT DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (event_id) REFERENCES events (id) ON DELETE CASCADE,
				INDEX idx_token (token)
			)`,
		}
	} else {
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				description TEXT,
				message TEXT,
				photos TEXT,
				location TEXT,
				date DATETIME,
				custom_images TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS guests (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				event_id INTEGER,
				name TEXT NOT NULL,
				token TEXT UNIQUE NOT NULL,
				confirmed INTEGER DEFAULT 0,
				num_people INTEGER DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (event_id) REFERENCES events (id) ON DELETE CASCADE
			)`,
			`CREATE INDEX IF NOT EXISTS idx_token ON guests (token)`,
		}
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// migrate applies additive schema changes that deployments created before the
// column existed may lack. Running it once at startup keeps concurrent
// requests from racing the same ALTER.
func (s *Storage) migrate(log *slog.Logger) error {
	alter := `ALTER TABLE events ADD COLUMN custom_images JSON`
	if s.driver == driverSQLite {
		alter = `ALTER TABLE events ADD COLUMN custom_images TEXT`
	}

	if _, err := s.DB.Exec(alter); err != nil {
		if isDuplicateColumn(err) {
			return nil
		}

		return fmt.Errorf("failed to add custom_images column: %w", err)
	}

	log.Info("schema migrated", slog.String("column", "events.custom_images"))

	return nil
}

func isDuplicateColumn(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column")
}

type execResult struct {
	lastID   int64
	affected int64
}

// run executes a statement and folds driver-native metadata into a uniform
// shape, the way both backends are expected to report inserts.
func (s *Storage) run(query string, args ...interface{}) (execResult, error) {
	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return execResult{}, err
	}

	lastID, _ := res.LastInsertId()
	affected, _ := res.RowsAffected()

	return execResult{lastID: lastID, affected: affected}, nil
}

func marshalPhotos(photos []string) string {
	if photos == nil {
		photos = []string{}
	}

	b, err := json.Marshal(photos)
	if err != nil {
		return "[]"
	}

	return string(b)
}

func marshalCustomImages(images []models.CustomImage) string {
	if images == nil {
		images = []models.CustomImage{}
	}

	b, err := json.Marshal(images)
	if err != nil {
		return "[]"
	}

	return string(b)
}

// parsePhotos degrades malformed or absent stored JSON to an empty slice, it
// must never fail the surrounding request.
func parsePhotos(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}

	var photos []string
	if err := json.Unmarshal([]byte(raw.String), &photos); err != nil || photos == nil {
		return []string{}
	}

	return photos
}

func parseCustomImages(raw sql.NullString) []models.CustomImage {
	if !raw.Valid || raw.String == "" {
		return []models.CustomImage{}
	}

	var images []models.CustomImage
	if err := json.Unmarshal([]byte(raw.String), &images); err != nil || images == nil {
		return []models.CustomImage{}
	}

	return images
}
