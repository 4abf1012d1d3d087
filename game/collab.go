package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Rand is the uniform [0,1) source consumed by Shuffle. *rand.Rand satisfies
// it; tests substitute a scripted source.
type Rand interface {
	Float64() float64
}

// Scheduler runs fn after d without blocking the caller. The round restart
// between rounds is the only thing scheduled.
type Scheduler interface {
	Schedule(d time.Duration, fn func())
}

type timerScheduler struct{}

func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// NewRand seeds a math/rand source with crypto entropy, falling back to the
// clock if the entropy read fails.
func NewRand() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}
