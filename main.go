package main

import (
	"os"

	"github.com/optionpanel/optionpanel/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
