package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
)

// NewPostgresDb opens a PostgreSQL connection and verifies it with a ping.
func NewPostgresDb(host, port, user, password, name string) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureWatchlistSchema creates the folders and channels tables if missing.
func EnsureWatchlistSchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS folders (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL
    )`); err != nil {
		return fmt.Errorf("create folders table: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS channels (
        id TEXT PRIMARY KEY,
        title TEXT NOT NULL,
        handle TEXT NOT NULL DEFAULT '',
        thumbnail_url TEXT NOT NULL DEFAULT '',
        uploads_playlist_id TEXT NOT NULL,
        folder_id TEXT NOT NULL REFERENCES folders(id),
        created_at TIMESTAMPTZ NOT NULL
    )`); err != nil {
		return fmt.Errorf("create channels table: %w", err)
	}
	return nil
}

// WatchlistRepository persists folders and channels in PostgreSQL.
type WatchlistRepository struct {
	db *sql.DB
}

func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Load returns all folders and channels in insertion order.
func (r *WatchlistRepository) Load(ctx context.Context) ([]model.Folder, []model.Channel, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM folders ORDER BY created_at ASC`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var folders []model.Folder
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, nil, err
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	chRows, err := r.db.QueryContext(ctx, `SELECT id, title, handle, thumbnail_url, uploads_playlist_id, folder_id
        FROM channels ORDER BY created_at ASC`)
	if err != nil {
		return nil, nil, err
	}
	defer chRows.Close()

	var channels []model.Channel
	for chRows.Next() {
		var c model.Channel
		if err := chRows.Scan(&c.ID, &c.Title, &c.Handle, &c.ThumbnailURL, &c.UploadsPlaylistID, &c.FolderID); err != nil {
			return nil, nil, err
		}
		channels = append(channels, c)
	}
	if err := chRows.Err(); err != nil {
		return nil, nil, err
	}

	return folders, channels, nil
}

// SaveFolder upserts one folder.
func (r *WatchlistRepository) SaveFolder(ctx context.Context, folder model.Folder) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO folders (id, name, created_at)
        VALUES ($1,$2,$3)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		folder.ID, folder.Name, time.Now().UTC())
	return err
}

// SaveChannel upserts one channel.
func (r *WatchlistRepository) SaveChannel(ctx context.Context, channel model.Channel) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO channels (id, title, handle, thumbnail_url, uploads_playlist_id, folder_id, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (id) DO UPDATE SET
            title = EXCLUDED.title,
            handle = EXCLUDED.handle,
            thumbnail_url = EXCLUDED.thumbnail_url,
            uploads_playlist_id = EXCLUDED.uploads_playlist_id,
            folder_id = EXCLUDED.folder_id`,
		channel.ID, channel.Title, channel.Handle, channel.ThumbnailURL,
		channel.UploadsPlaylistID, channel.FolderID, time.Now().UTC())
	return err
}
