package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
)

func TestDecodeStoredUserRoundTrip(t *testing.T) {
	user := domain.User{ID: "42", Name: "Layla Hassan", Email: "layla@example.com"}

	data, err := EncodeStoredUser(user)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"42","name":"Layla Hassan","email":"layla@example.com"}`, string(data))

	decoded, err := DecodeStoredUser(data)
	require.NoError(t, err)
	assert.Equal(t, user, decoded)
}

func TestDecodeStoredUserIgnoresUnknownKeys(t *testing.T) {
	decoded, err := DecodeStoredUser([]byte(`{"id":"1","name":"A","email":"a@example.com","theme":"dark"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "1", Name: "A", Email: "a@example.com"}, decoded)
}

func TestDecodeStoredUserRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		field string
	}{
		{name: "empty", input: "   "},
		{name: "not json", input: "{id: 1"},
		{name: "array", input: `["id","name"]`},
		{name: "null document", input: "null"},
		{name: "missing email", input: `{"id":"1","name":"A"}`, field: "email"},
		{name: "numeric id", input: `{"id":1,"name":"A","email":"a@example.com"}`, field: "id"},
		{name: "null name", input: `{"id":"1","name":null,"email":"a@example.com"}`, field: "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeStoredUser([]byte(tc.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrStoredUserInvalid))

			var storedErr *StoredUserError
			require.True(t, errors.As(err, &storedErr))
			assert.Equal(t, tc.field, storedErr.Field)
		})
	}
}
