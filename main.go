package main

import (
	"os"

	"github.com/GameItem-Admin/GameItem-Admin/app"
)

func main() {
	// cobra already printed the error
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
