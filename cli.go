//go:build cli
// +build cli

package main

import (
	_ "crm.GO/custom"

	"crm.GO/cmd"
	"crm.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
