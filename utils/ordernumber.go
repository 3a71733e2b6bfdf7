package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	nodeOnce sync.Once
	idNode   *snowflake.Node
)

func node() *snowflake.Node {
	nodeOnce.Do(func() {
		nodeID, _ := strconv.ParseInt(os.Getenv("NODE_ID"), 10, 64)
		n, err := snowflake.NewNode(nodeID)
		if err != nil {
			log.Fatal("Failed to initialize snowflake node: ", err)
		}
		idNode = n
	})
	return idNode
}

// GenerateOrderNumber produces a human-readable, collision-safe order number.
// Snowflake IDs are monotonic per node, so the unique index on order_number
// never needs conflict retries.
func GenerateOrderNumber() string {
	return fmt.Sprintf("SHF-%s", node().Generate().String())
}
