/*
Copyright © 2025 Aalify-X
*/
package main

import (
	"log"

	"github.com/Aalify-X/progrify-be/cmd"
	"github.com/joho/godotenv"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}
}
