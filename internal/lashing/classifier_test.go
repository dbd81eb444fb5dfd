package lashing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testLine builds a manifest line with content at fixed column offsets.
func testLine(parts map[int]string) string {
	buf := []byte(strings.Repeat(" ", 120))
	for offset, s := range parts {
		copy(buf[offset:], s)
	}
	return strings.TrimRight(string(buf), " ")
}

// Scenario: odd bays always lash, even bays only from tier 69 upward, and
// only MSC containers count at all.
func TestIsLashing(t *testing.T) {
	line := func(stow, operator string) string {
		return testLine(map[int]string{0: stow, 7: "MSCU1234567", 19: operator, 110: "CNSHAKRBUS"})
	}

	// Odd bay: any tier.
	assert.True(t, IsLashing(line("130202", "MSC")))
	assert.True(t, IsLashing(line("010482", "MSC")))

	// Even bay: tier threshold.
	assert.False(t, IsLashing(line("140268", "MSC")))
	assert.True(t, IsLashing(line("140269", "MSC")))
	assert.True(t, IsLashing(line("140284", "MSC")))

	// Non-MSC operators never lash.
	assert.False(t, IsLashing(line("130202", "HLC")))

	// No usable stow position.
	assert.False(t, IsLashing(testLine(map[int]string{7: "MSCU1234567", 19: "MSC"})))
	assert.False(t, IsLashing(line("13A202", "MSC")))
}
