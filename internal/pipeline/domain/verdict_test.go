package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovedVerdictCarriesNoIssues(t *testing.T) {
	v := ApprovedVerdict("looks right")

	assert.True(t, v.Approved())
	assert.Empty(t, v.Errors())
	assert.Empty(t, v.Warnings())
	assert.Equal(t, "looks right", v.Summary())
}

func TestFlaggedVerdictRequiresAnIssue(t *testing.T) {
	_, err := FlaggedVerdict("flagged for nothing", nil, nil)
	assert.ErrorIs(t, err, ErrVerdictWithoutIssues)

	v, err := FlaggedVerdict("unbalanced", []string{"debits exceed credits"}, nil)
	require.NoError(t, err)
	assert.False(t, v.Approved())
	assert.Equal(t, []string{"debits exceed credits"}, v.Errors())
}

func TestParseVerdict(t *testing.T) {
	v, err := ParseVerdict("approved", []string{"stale error"}, nil, "fine")
	require.NoError(t, err)
	assert.True(t, v.Approved())
	// The approved shape cannot carry issues, whatever the wire said.
	assert.Empty(t, v.Errors())

	v, err = ParseVerdict("flagged", nil, []string{"confidence low"}, "check it")
	require.NoError(t, err)
	assert.False(t, v.Approved())
	assert.Equal(t, []string{"confidence low"}, v.Warnings())

	_, err = ParseVerdict("rejected", nil, nil, "")
	assert.ErrorIs(t, err, ErrInvalidVerdictStatus)

	_, err = ParseVerdict("flagged", nil, nil, "no issues listed")
	assert.ErrorIs(t, err, ErrVerdictWithoutIssues)
}
