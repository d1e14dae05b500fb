package constants

import "time"

const (
	SpeciesCacheKind = "species"
	MoveCacheKind    = "move"
	DefaultCacheTTL  = time.Hour
)

const (
	ExternalAPITimeout = 10 * time.Second
	ResolveTimeout     = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	DBMaxOpenConns    = 4
	DBMaxIdleConns    = 2
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	// MaxFetchedMoves caps the learnset kept from a remote species record.
	MaxFetchedMoves = 20
	DefaultWorkers  = 8
	MaxBatchRuns    = 100000
)
