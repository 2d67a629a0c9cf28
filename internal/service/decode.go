package service

import (
	"fmt"

	"github.com/bazarly/bazarly-go/internal/transport"
)

// decodeOne decodes a single-record payload, tolerating both a bare object
// and a {"data": {...}} envelope.
func decodeOne[T any](raw []byte) (*T, error) {
	list, err := transport.DecodeList[T](raw)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("empty response payload")
	}

	return &list[0], nil
}
