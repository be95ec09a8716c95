package service

import "time"

const (
	defaultWorkerCount   = 8
	defaultBatchSize     = 500
	defaultMaxReorgDepth = 100

	transactionFlushThreshold = 1000
	nodeFlushThreshold        = 10_000

	sleepDuration     = 5 * time.Second
	idleSleepDuration = 30 * time.Second

	mirrorBatcherCapacity      = 100
	mirrorBatcherFlushInterval = time.Second
	mirrorBatcherRPS           = 20
	mirrorFlushAttempts        = 3
	mirrorRetryBackoff         = 2 * time.Second

	// resyncWindow is the height span of one mirrored-records query.
	resyncWindow = 5000
)
