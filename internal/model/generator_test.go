package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 12, opts.PasswordLength)
	assert.Equal(t, 5, opts.Quantity)
	assert.True(t, opts.IncludeNumbers)
	assert.True(t, opts.IncludeSymbols)
	assert.True(t, opts.IncludeUppercase)
}

func TestFieldRoleValue(t *testing.T) {
	item := GeneratedItem{ID: "1", Username: "CoolDragon7", Password: "s3cret!"}

	v, ok := RoleUsername.Value(item)
	assert.True(t, ok)
	assert.Equal(t, "CoolDragon7", v)

	v, ok = RolePassword.Value(item)
	assert.True(t, ok)
	assert.Equal(t, "s3cret!", v)

	_, ok = FieldRole("email").Value(item)
	assert.False(t, ok)
}
