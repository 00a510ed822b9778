package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// pace of a match and the recording backends.
var (
	MaxOpenConns = getEnvInt("MAX_OPEN_CONNS", 20)
	MaxIdleConns = getEnvInt("MAX_IDLE_CONNS", 20)
	// TickRate is the number of simulation ticks per second. The default is
	// close to one tick every 9ms.
	TickRate  = rate.Limit(getEnvInt("TICK_RATE", 111))
	TickBurst = getEnvInt("TICK_BURST", 1)
	// RecordEvery controls how many ticks pass between recorded frames.
	RecordEvery = getEnvInt("RECORD_EVERY", 8)
	// FramePoll is how often the spectator socket polls for new frames.
	FramePoll = time.Duration(getEnvInt("FRAME_POLL_MS", 50)) * time.Millisecond
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
