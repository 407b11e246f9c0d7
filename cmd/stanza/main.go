// Package main provides a small CLI over the stanza statement engine.
//
// The CLI renders DDL from the command line, which is handy for
// inspecting what the builders emit without writing a program:
//
//	stanza ddl --table users \
//	    --column "id:integer:pk" \
//	    --column "name:varchar(255):notnull,unique" \
//	    --column "org_id:integer:notnull,ref=orgs.id"
//
// Commands never touch a database; output goes to stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stanza: %v\n", err)
		os.Exit(1)
	}
}
