package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Load resolves a secret value. When file is non-empty it is read and takes
// precedence over the inline value. The result is always trimmed; an error is
// returned when no usable secret remains. The name is only used to give error
// messages context.
func Load(name, file, inline string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = "secret"
	}

	file = strings.TrimSpace(file)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		inline = string(data)
	}

	secret := strings.TrimSpace(inline)
	if secret == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}
