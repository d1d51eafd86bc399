package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NSteinhoff/meal-planner/internal/db"
	"github.com/NSteinhoff/meal-planner/internal/loader"
)

// loadRecords reads raw recipe records from either a CSV file or a
// recipe database, dispatched on the file extension.
func loadRecords(path string) ([]loader.Record, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("unknown file %q", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		var records []loader.Record
		err := withDB(path, func(sqldb *sql.DB) error {
			var err error
			records, err = db.LoadRecords(sqldb)
			return err
		})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("no recipes in %q", path)
		}
		return records, nil
	default:
		return loader.Load(path)
	}
}

func withDB(path string, run func(*sql.DB) error) error {
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}
