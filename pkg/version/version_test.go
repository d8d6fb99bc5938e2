package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	origVersion, origCommit := version, commit
	t.Cleanup(func() { version, commit = origVersion, origCommit })

	version, commit = "1.4.0", ""
	assert.Equal(t, "1.4.0", GetVersion())

	commit = "0123456789abcdef"
	assert.Equal(t, "1.4.0 (0123456)", GetVersion())

	commit = "abc"
	assert.Equal(t, "1.4.0 (abc)", GetVersion())
}
