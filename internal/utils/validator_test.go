// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type passwordFixture struct {
	Password string `validate:"strong_password"`
}

type usernameFixture struct {
	Username string `validate:"username"`
}

func TestStrongPasswordValidation(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"StrongPass1", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoNumbersHere", false},
	}

	for _, tc := range cases {
		err := ValidateStruct(&passwordFixture{Password: tc.password})
		if tc.valid {
			assert.NoError(t, err, tc.password)
		} else {
			assert.Error(t, err, tc.password)
		}
	}
}

func TestUsernameValidation(t *testing.T) {
	cases := []struct {
		username string
		valid    bool
	}{
		{"alice", true},
		{"alice_93", true},
		{"ab", false},
		{"has spaces", false},
		{"exclamation!", false},
	}

	for _, tc := range cases {
		err := ValidateStruct(&usernameFixture{Username: tc.username})
		if tc.valid {
			assert.NoError(t, err, tc.username)
		} else {
			assert.Error(t, err, tc.username)
		}
	}
}

func TestGetValidationErrors(t *testing.T) {
	type fixture struct {
		Email string `validate:"required,email"`
	}

	errs := GetValidationErrors(ValidateStruct(&fixture{}))
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)

	assert.Empty(t, GetValidationErrors(nil))
}
