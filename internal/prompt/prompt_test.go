package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdduha/explain-camera/backend/internal/models"
)

func TestSystem(t *testing.T) {
	seen := map[string]models.Mode{}
	for _, mode := range models.Modes {
		p, err := System(mode)
		require.NoError(t, err)
		assert.NotEmpty(t, p)

		prev, dup := seen[p]
		assert.False(t, dup, "%s shares a prompt with %s", mode, prev)
		seen[p] = mode
	}
}

func TestSystemContracts(t *testing.T) {
	kid, _ := System(models.ModeKid)
	assert.Contains(t, kid, "5-year-old")
	assert.Contains(t, kid, "Maximum 3-4 sentences")

	student, _ := System(models.ModeStudent)
	assert.Contains(t, student, "4-6 sentences")
	assert.Contains(t, student, "one concrete example")
	assert.Contains(t, student, "basic terminology")

	expert, _ := System(models.ModeExpert)
	assert.Contains(t, expert, "3-5 sentences")
	assert.Contains(t, expert, "technical terminology")
}

func TestSystemInvalidMode(t *testing.T) {
	for _, mode := range []models.Mode{"", "invalid", "KID"} {
		_, err := System(mode)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMode))
	}
}

func TestUserIsConstant(t *testing.T) {
	assert.NotEmpty(t, User())
	assert.Equal(t, User(), User())

	for _, mode := range models.Modes {
		pair, err := Get(mode)
		require.NoError(t, err)
		assert.Equal(t, User(), pair.User)
	}
}
