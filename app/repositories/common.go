package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already taken")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix    = "post:"
	CommentKeyPrefix = "comment:"
	UserKeyPrefix    = "user:"

	// Username uniqueness index: username:<name> -> user ID
	UsernameKeyPrefix = "username:"
)

func postKey(id string) []byte    { return []byte(PostKeyPrefix + id) }
func commentKey(id string) []byte { return []byte(CommentKeyPrefix + id) }
func userKey(id string) []byte    { return []byte(UserKeyPrefix + id) }
func usernameKey(name string) []byte {
	return []byte(UsernameKeyPrefix + name)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
