package utils_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

func TestQueryInt(t *testing.T) {
	q := url.Values{"limit": {"25"}, "offset": {"abc"}}

	assert.Equal(t, 25, utils.QueryInt(q, "limit", 50))
	assert.Equal(t, 0, utils.QueryInt(q, "offset", 0), "garbage falls back to default")
	assert.Equal(t, 50, utils.QueryInt(q, "missing", 50))
}
