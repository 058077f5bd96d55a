package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 8, columnToIndex("I"))
	assert.Equal(t, 25, columnToIndex("Z"))
	assert.Equal(t, 26, columnToIndex("AA"))
	assert.Equal(t, 0, columnToIndex("a"))
	assert.Equal(t, -1, columnToIndex(""))
	assert.Equal(t, -1, columnToIndex("4"))
}

func TestCell(t *testing.T) {
	row := []string{"phys_b_1", " Shoulder Rolls ", "physical"}

	assert.Equal(t, "phys_b_1", cell(row, "A"))
	assert.Equal(t, "Shoulder Rolls", cell(row, "B"))
	assert.Equal(t, "", cell(row, "Z"), "short rows read as empty")
}

func TestCellInt(t *testing.T) {
	row := []string{"10", "ten", ""}

	assert.Equal(t, 10, cellInt(row, "A"))
	assert.Equal(t, 0, cellInt(row, "B"))
	assert.Equal(t, 0, cellInt(row, "C"))
}

func TestParseDifficulty(t *testing.T) {
	for _, valid := range []string{"beginner", "intermediate", "advanced"} {
		got, ok := parseDifficulty(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, got)
	}

	_, ok := parseDifficulty("expert")
	assert.False(t, ok)
}
