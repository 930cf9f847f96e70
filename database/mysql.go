package database

import (
	"database/sql"
	"log"

	"github.com/ZachMcM/purdue-hoops/config"
	_ "github.com/go-sql-driver/mysql"
)

var DB *sql.DB

func Connect() error {
	var err error
	DB, err = sql.Open("mysql", config.Cfg.MysqlDSN)
	if err != nil {
		return err
	}

	if err = DB.Ping(); err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)

	log.Println("Database connected successfully")
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}

func CreateTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id              VARCHAR(36) PRIMARY KEY,
			name            VARCHAR(100) NOT NULL,
			username        VARCHAR(50) NOT NULL,
			email           VARCHAR(255) NOT NULL,
			password        VARCHAR(255) NOT NULL,
			feet            INT DEFAULT 0,
			inches          INT DEFAULT 0,
			weight          INT DEFAULT 0,
			position        VARCHAR(50) DEFAULT '',
			primary_skill   VARCHAR(50) DEFAULT '',
			secondary_skill VARCHAR(50) DEFAULT '',
			image           VARCHAR(255) DEFAULT '',
			hooping_status  ENUM('not-hooping', 'gold-and-black', 'feature', 'upper') DEFAULT 'not-hooping',
			overall_rating  DOUBLE NULL,
			created_at      DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at      DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_username (username),
			UNIQUE KEY uk_email (email),
			INDEX idx_hooping (hooping_status)
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			id          VARCHAR(36) PRIMARY KEY,
			outgoing_id VARCHAR(36) NOT NULL,
			incoming_id VARCHAR(36) NOT NULL,
			value       INT NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_rating_pair (outgoing_id, incoming_id),
			INDEX idx_incoming (incoming_id)
		)`,
		`CREATE TABLE IF NOT EXISTS friendships (
			id          VARCHAR(36) PRIMARY KEY,
			outgoing_id VARCHAR(36) NOT NULL,
			incoming_id VARCHAR(36) NOT NULL,
			status      ENUM('pending', 'accepted') DEFAULT 'pending',
			pair_key    VARCHAR(73) NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_pair (pair_key),
			INDEX idx_incoming (incoming_id),
			INDEX idx_outgoing (outgoing_id)
		)`,
		`CREATE TABLE IF NOT EXISTS hoop_sessions (
			id         VARCHAR(36) PRIMARY KEY,
			user_id    VARCHAR(36) NOT NULL,
			gym        VARCHAR(50) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_user (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS searches (
			id          VARCHAR(36) PRIMARY KEY,
			outgoing_id VARCHAR(36) NOT NULL,
			incoming_id VARCHAR(36) NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uk_search_pair (outgoing_id, incoming_id),
			INDEX idx_outgoing (outgoing_id)
		)`,
	}

	for _, table := range tables {
		if _, err := DB.Exec(table); err != nil {
			return err
		}
	}

	log.Println("Database tables created successfully")
	return nil
}
