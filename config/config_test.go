package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_KEY", "a=b")

	c := New()
	assert.Equal(t, "a=b", c["PORTFOLIO_TEST_KEY"])
}

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":        "9090",
		"BAD_INT":     "nine",
		"BLANK":       "  ",
		"AUTO":        "true",
		"BAD_BOOL":    "maybe",
		"ORIGINS":     "http://a.test, ,http://b.test",
		"UPLOAD_SIZE": "4194304",
	}

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
		assert.Equal(t, "8080", GetString(c, "MISSING", "8080"))
		assert.Equal(t, "x", GetString(c, "BLANK", "x"))
		assert.Equal(t, "x", GetString(nil, "PORT", "x"))
	})

	t.Run("int", func(t *testing.T) {
		assert.Equal(t, 9090, GetInt(c, "PORT", 1))
		assert.Equal(t, 1, GetInt(c, "BAD_INT", 1))
		assert.Equal(t, int64(4194304), GetInt64(c, "UPLOAD_SIZE", 0))
	})

	t.Run("bool", func(t *testing.T) {
		assert.True(t, GetBool(c, "AUTO", false))
		assert.False(t, GetBool(c, "BAD_BOOL", false))
		assert.True(t, GetBool(c, "MISSING", true))
	})

	t.Run("list", func(t *testing.T) {
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetList(c, "ORIGINS"))
		assert.Nil(t, GetList(c, "MISSING"))
	})
}
