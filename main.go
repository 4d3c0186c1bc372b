package main

import (
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/rmalloy/folio/cmd"
)

func main() {
	cmd.Execute()
}
