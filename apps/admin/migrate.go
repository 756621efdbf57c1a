package main

import (
	"database/sql"

	"github.com/trezcool/goose"

	appfs "github.com/trezcool/darasa/fs"
	"github.com/trezcool/darasa/storage/database"
)

// mockable
var (
	gooseRunFunc = goose.RunFS
	createDBFunc = database.CreateIfNotExist
)

func (cli *commandLine) migrate(args []string) error {
	if err := createDBFunc(cli.conf); err != nil {
		return err
	}

	// resolve the raw connection only once the DB is known to exist
	var db *sql.DB
	if cli.db != nil {
		db = cli.db.DB
	}

	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], db, appfs.FS, "migrations", arguments...)
}
