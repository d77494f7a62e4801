package main

import "github.com/samhrndi/ecommerce-analytics/internal/cli"

func main() {
	cli.Execute()
}
