package custcon

import (
	"log"

	"github.com/CE-Thesis-2023/ptzctl/internal/logger"

	"github.com/panjf2000/ants/v2"
)

func New(size int) *ants.Pool {
	pool, err := ants.NewPool(
		size,
		ants.WithPreAlloc(true),
		ants.WithNonblocking(false),
		ants.WithLogger(logger.NewZapToAntsLogger(logger.Logger())),
	)
	if err != nil {
		log.Fatalf("pool.New: err = %s", err)
	}
	return pool
}
