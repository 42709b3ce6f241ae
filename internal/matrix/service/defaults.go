package service

import "time"

const (
	defaultPollInterval  = 30 * time.Second
	defaultErrorCooldown = 10 * time.Second

	defaultChunkSize       = 10
	defaultMaxTransactions = 100
)
