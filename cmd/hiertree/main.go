/*
Command hiertree builds trees from flat record stores and queries them.

Records are read from a JSON or YAML file (or standard input), or from the
result of an SQL query against an SQLite database:

    hiertree show -i links.json --view html --template '<a href="<%uri%>"><%text%></a>'
    hiertree find -i links.yaml text css beginner
    hiertree branch --db shop.db --sql 'SELECT * FROM categories' 42
    hiertree explore -i links.json

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
