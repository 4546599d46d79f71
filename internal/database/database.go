package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	// modernc's sqlite is not safe for concurrent writers on one file;
	// a single connection keeps request ordering deterministic.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS admin_credentials (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS site_settings (
		id TEXT NOT NULL PRIMARY KEY,
		site_name TEXT NOT NULL,
		logo_url TEXT,
		phone TEXT,
		email TEXT,
		address TEXT
	);

	CREATE TABLE IF NOT EXISTS hero_carousel (
		id TEXT NOT NULL PRIMARY KEY,
		url TEXT NOT NULL,
		alt TEXT,
		display_order INTEGER NOT NULL DEFAULT 0,
		enabled INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS weddings (
		id TEXT NOT NULL PRIMARY KEY,
		cover_image TEXT NOT NULL,
		bride_name TEXT NOT NULL,
		groom_name TEXT NOT NULL,
		wedding_date TEXT NOT NULL,
		location TEXT NOT NULL,
		-- Gallery image URLs as a JSON array
		images_json TEXT NOT NULL DEFAULT '[]',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS films (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		video_url TEXT NOT NULL,
		thumbnail TEXT,
		is_featured INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS about (
		id TEXT NOT NULL PRIMARY KEY,
		image TEXT,
		name TEXT NOT NULL,
		bio TEXT
	);

	CREATE TABLE IF NOT EXISTS packages (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		thumbnail TEXT NOT NULL,
		description TEXT,
		images_json TEXT NOT NULL DEFAULT '[]',
		pricing TEXT,
		display_order INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS contact_inquiries (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		wedding_date TEXT,
		message TEXT,
		submitted_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS section_content (
		id TEXT NOT NULL PRIMARY KEY,
		section_key TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		subtitle TEXT,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS social_media_links (
		id TEXT NOT NULL PRIMARY KEY,
		facebook TEXT,
		instagram TEXT,
		youtube TEXT,
		twitter TEXT,
		linkedin TEXT,
		pinterest TEXT,
		tiktok TEXT,
		enabled INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS facebook_settings (
		id TEXT NOT NULL PRIMARY KEY,
		page_id TEXT,
		access_token TEXT,
		posts_limit INTEGER NOT NULL DEFAULT 6,
		enabled INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS youtube_settings (
		id TEXT NOT NULL PRIMARY KEY,
		channel_id TEXT,
		api_key TEXT,
		max_videos INTEGER NOT NULL DEFAULT 6,
		enabled INTEGER NOT NULL DEFAULT 0,
		section_title TEXT,
		section_description TEXT
	);

	CREATE TABLE IF NOT EXISTS activity_events (
		id TEXT NOT NULL PRIMARY KEY,
		type TEXT NOT NULL,
		level TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
