package main

import (
	"fmt"
	"os"

	"shelter-admin/internal/cli"
)

// @title Shelter Admin API
// @version 1.0
// @description Administración de refugios: solicitudes de adopción, reportes y proyecciones.
// @BasePath /
func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
