package profile

import (
	"fmt"
	"regexp"
)

var nameRegexp = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ValidateName checks that name conforms to profile naming rules. Backend ids
// follow the same rules since they name directories too.
func ValidateName(name string) error {
	if !nameRegexp.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match ^[a-z0-9_-]{1,64}$", name)
	}
	return nil
}
