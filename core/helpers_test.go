package core_test

import (
	"time"

	"github.com/warp/hangar-engine/core"
)

func testNow() time.Time {
	return time.Date(2026, time.March, 14, 6, 30, 0, 0, time.UTC)
}

func testEnv() core.Env {
	return core.Env{Now: testNow(), Rand: core.NewRand(1), Content: &core.Content{}}
}
