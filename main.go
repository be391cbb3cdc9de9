package main

import (
	"github.com/joho/godotenv"

	"github.com/Arunkumarpodili/zoho-timelog-automation/cmd"
)

func main() {
	// A .env file is a convenience for local runs; scheduled runs get
	// their environment from the scheduler.
	_ = godotenv.Load()

	cmd.Execute()
}
