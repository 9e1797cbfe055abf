package params

import (
	"fmt"
	"strconv"

	"github.com/wb-go/wbf/ginext"
)

// ID parses a positive integer path parameter.
func ID(c *ginext.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return id, nil
}
