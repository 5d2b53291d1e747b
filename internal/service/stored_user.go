package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
)

var ErrStoredUserInvalid = errors.New("stored user does not match the expected shape")

var storedUserFields = []string{"id", "name", "email"}

// StoredUserError describes why a persisted user could not be rehydrated.
type StoredUserError struct {
	Key    string
	Field  string
	Reason string
	Err    error
}

func (e *StoredUserError) Error() string {
	msg := "stored user"
	if e.Key != "" {
		msg += fmt.Sprintf(" %q", e.Key)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StoredUserError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStoredUserInvalid}
	}
	return []error{ErrStoredUserInvalid, e.Err}
}

func EncodeStoredUser(user domain.User) ([]byte, error) {
	return json.Marshal(user)
}

// DecodeStoredUser validates the persisted text against the user schema: a
// JSON object whose id, name and email are all strings. Unknown keys are
// ignored.
func DecodeStoredUser(data []byte) (domain.User, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return domain.User{}, &StoredUserError{Reason: "empty value"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return domain.User{}, &StoredUserError{Reason: "not a JSON object", Err: err}
	}
	if fields == nil {
		return domain.User{}, &StoredUserError{Reason: "not a JSON object"}
	}

	values := make(map[string]string, len(storedUserFields))
	for _, name := range storedUserFields {
		raw, ok := fields[name]
		if !ok {
			return domain.User{}, &StoredUserError{Field: name, Reason: "missing"}
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return domain.User{}, &StoredUserError{Field: name, Reason: "must be a string"}
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return domain.User{}, &StoredUserError{Field: name, Reason: "must be a string", Err: err}
		}
		values[name] = value
	}

	return domain.User{
		ID:    values["id"],
		Name:  values["name"],
		Email: values["email"],
	}, nil
}
