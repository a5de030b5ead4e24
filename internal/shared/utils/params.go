package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/shared/errors"
)

// ParseUintParam parses a numeric path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(v), nil
}

// QueryUintPtr parses an optional numeric query parameter, returning nil when
// absent or not numeric.
func QueryUintPtr(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

// QueryBool reports whether a query flag is present and truthy. Any of
// "1", "true", "on", "yes" count as set.
func QueryBool(c *gin.Context, name string) bool {
	switch c.Query(name) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// QueryUint64Ptr parses an optional numeric query parameter into a uint64,
// returning nil when absent or not numeric.
func QueryUint64Ptr(c *gin.Context, name string) *uint64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
