package main

import (
	"os"

	"github.com/ticket-office/ticket-office/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
