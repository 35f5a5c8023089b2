package configs

import (
	"errors"
)

// First decodes the value of the first path set by any file.
// It returns nil when none is set.
func First[T any](loader Loader, paths ...string) (*T, error) {
	for _, path := range paths {
		var value T
		err := loader.AssignFirst(path, &value)
		if errors.Is(err, ErrValueNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &value, nil
	}
	return nil, nil
}
