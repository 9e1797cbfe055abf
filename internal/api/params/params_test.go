package params

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := ID(c, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		c.Params = gin.Params{{Key: "id", Value: bad}}
		_, err := ID(c, "id")
		assert.EqualError(t, err, "invalid id", bad)
	}
}
