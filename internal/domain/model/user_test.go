package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Role
		ok    bool
	}{
		{name: "talent", input: "talent", want: RoleTalent, ok: true},
		{name: "founder uppercase", input: "FOUNDER", want: RoleFounder, ok: true},
		{name: "investor padded", input: "  investor ", want: RoleInvestor, ok: true},
		{name: "student", input: "student", want: RoleStudent, ok: true},
		{name: "unknown", input: "admin", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace", Username: "ada"}.DisplayName())
	assert.Equal(t, "ada", User{Username: "ada", Email: "ada@example.com"}.DisplayName())
	assert.Equal(t, "ada@example.com", User{Email: "ada@example.com"}.DisplayName())
}

func TestTokenPair_Empty(t *testing.T) {
	assert.True(t, TokenPair{}.Empty())
	assert.True(t, TokenPair{Access: "   "}.Empty())
	assert.False(t, TokenPair{Access: "tok"}.Empty())
}
