package main

import "github.com/nazliander/dbt-core/internal/cli"

func main() {
	cli.Execute()
}
