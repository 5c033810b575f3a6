package main

import (
	"github.com/vfg2006/sales-analytics/internal/cli"
)

func main() {
	cli.Execute()
}
