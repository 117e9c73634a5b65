package config

import "github.com/joho/godotenv"

// LoadDotenv loads a .env file into the process environment if one exists.
// A missing file is not an error; already-set variables are never overridden.
func LoadDotenv() {
	_ = godotenv.Load()
}
