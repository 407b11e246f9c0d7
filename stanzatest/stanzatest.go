// Package stanzatest provides shared schema fixtures for stanza tests.
package stanzatest

import "github.com/zoobzio/dbml"

// Project returns a DBML project with the tables the test suites
// share: users, orders and products.
func Project() *dbml.Project {
	project := dbml.NewProject("stanzatest")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "integer"))
	users.AddColumn(dbml.NewColumn("name", "varchar(255)"))
	users.AddColumn(dbml.NewColumn("email", "varchar(255)"))
	users.AddColumn(dbml.NewColumn("age", "integer"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "integer"))
	orders.AddColumn(dbml.NewColumn("user_id", "integer"))
	orders.AddColumn(dbml.NewColumn("total", "numeric(10,2)"))
	orders.AddColumn(dbml.NewColumn("status", "text"))
	project.AddTable(orders)

	products := dbml.NewTable("products")
	products.AddColumn(dbml.NewColumn("id", "integer"))
	products.AddColumn(dbml.NewColumn("name", "text"))
	products.AddColumn(dbml.NewColumn("price", "numeric(10,2)"))
	project.AddTable(products)

	return project
}
