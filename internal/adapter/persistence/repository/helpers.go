package repository

import (
	"errors"
	"os"
)

var errMissingAuditCounter = errors.New("audit counter attribute missing")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
