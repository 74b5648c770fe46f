package main

import (
	"os"
)

// @title           BuyIT Hub API
// @version         1.0
// @description     Procurement lifecycle: request, approval, purchase order and invoice matching.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
