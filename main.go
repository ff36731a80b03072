// Package main is the entry point for the tailtheme application.
package main

import (
	"github.com/samber/lo"
	"github.com/tailtheme/tailtheme/cmd"
	"github.com/tailtheme/tailtheme/config"
	"github.com/tailtheme/tailtheme/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
