package kzg10

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)

	assert.NoError(Version.Validate())
	assert.True(Version.GT(semver.Version{}), "version must not be the zero value")

	// reparsing the rendered version is the identity
	parsed, err := semver.ParseTolerant("v" + Version.String())
	assert.NoError(err)
	assert.True(parsed.EQ(Version))
}
