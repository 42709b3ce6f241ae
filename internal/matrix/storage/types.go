package storage

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records writer operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
