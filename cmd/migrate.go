package cmd

import (
	"log"

	"pokerledger/database"
)

// MigrateUpCmd applies pending migrations
type MigrateUpCmd struct{}

func (c *MigrateUpCmd) Run() error {
	return database.MigrateUp()
}

// MigrateDownCmd rolls back migrations
type MigrateDownCmd struct {
	Steps int `arg:"" optional:"" default:"1" help:"Number of migrations to roll back"`
}

func (c *MigrateDownCmd) Run() error {
	return database.MigrateDown(c.Steps)
}

// MigrateStatusCmd prints the schema version
type MigrateStatusCmd struct{}

func (c *MigrateStatusCmd) Run() error {
	status, err := database.MigrateStatus()
	if err != nil {
		return err
	}
	switch {
	case !status.Applied:
		log.Println("No migrations applied")
	case status.Dirty:
		log.Printf("Schema version %d (dirty, fix manually before migrating)", status.Version)
	default:
		log.Printf("Schema version %d", status.Version)
	}
	return nil
}

// MigrateCmd groups the schema migration commands
type MigrateCmd struct {
	Up     MigrateUpCmd     `cmd:"" help:"Apply every pending migration"`
	Down   MigrateDownCmd   `cmd:"" help:"Roll back migrations"`
	Status MigrateStatusCmd `cmd:"" help:"Show the current schema version"`
}
