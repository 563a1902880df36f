// Package output writes the generated rotation to the server rotation file.
package output

import (
	"fmt"
	"os"
	"strings"
)

const filePerm = 0o644

// Write stores the rotation as newline-joined layer identifiers at path,
// replacing any previous rotation atomically enough for a config file read
// once at server start.
func Write(path string, names []string) error {
	content := strings.Join(names, "\n")
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write rotation file: %w", err)
	}
	return nil
}
