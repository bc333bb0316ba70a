package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFound_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("lookup failed: %w", NewCharacterNotFound("Mario"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsNoPath(err))
	assert.True(t, IsErrorType(err, ErrorTypeCharacter))
	assert.Contains(t, err.Error(), "character 'Mario' not found")
}

func TestIsNoPath(t *testing.T) {
	err := NewNoPath("Mario", "Kirby")

	assert.True(t, IsNoPath(err))
	assert.False(t, IsNotFound(err))
	assert.True(t, IsErrorType(err, ErrorTypePath))
	assert.Equal(t, "Mario", err.From)
	assert.Equal(t, "Kirby", err.To)
}

func TestIsErrorType_WrappedCause(t *testing.T) {
	cause := NewConfigMissingRequired("NEO4J_URI")
	err := NewGraphConnectionFailed("bolt://localhost:7687", cause)

	assert.True(t, IsErrorType(err, ErrorTypeStore))
	assert.True(t, IsErrorType(err, ErrorTypeConfig))
	assert.False(t, IsErrorType(err, ErrorTypeLoader))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeStore))
}

func TestBaseError_Message(t *testing.T) {
	assert.Equal(t, "[character] character table is empty", ErrEmptyTable.Error())

	err := NewLoaderParseFailed("chars.csv", 3, "missing name", fmt.Errorf("boom"))
	assert.Equal(t, "[loader] chars.csv:3: missing name: boom", err.Error())
}
