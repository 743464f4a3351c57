// Package id allocates the identifiers for every generated entity.
// Snowflake IDs are time-ordered and collision-free regardless of how
// generation within a stage is ordered, which is what lets per-entity work
// be reordered or parallelized without identifier coordination.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the generator node. Call once at process start, before
// the first stage runs.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a new globally unique int64 ID.
func New() int64 {
	return node.Generate().Int64()
}
