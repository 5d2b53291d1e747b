package domain

// User is the signed-in visitor. It is persisted verbatim under the
// local-storage key, so the JSON tags are the storage schema.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
