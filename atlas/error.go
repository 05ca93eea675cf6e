package atlas

import "fmt"

// AssetError reports an atlas key that matched no regions. It aborts only
// the lookup that raised it; the catalog itself stays usable.
type AssetError struct {
	Key string
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("no regions for atlas key %q", e.Key)
}
