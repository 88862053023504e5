// Package main provides the entry point of GameItem-Admin, a small web
// service that stores game items uploaded as JSON files and serves the whole
// catalogue back as JSON. Items are validated against a fixed schema before
// they reach the database; gorm keeps them in SQLite, MySQL or Postgres.
package main
