package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadStore opens, decodes and returns the store persisted at path.
//
// A path that does not exist is not an error: the first session simply
// starts from an empty store. Any other open or read failure, and any
// malformed number in the file, is returned to the caller untouched.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	store, err := DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	return store, nil
}

// SaveStore persists the store at path, overwriting any previous content.
// There is no partial-write protection: a failed save may leave a
// truncated file.
func SaveStore(path string, store *Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening inventory file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeStore(f, store)
}
