package utils

import (
	"fmt"
	"io"
	"os"
)

// ReadStdin consumes everything piped to stdin. It refuses to read when
// stdin is a terminal, so a command invoked without piped data fails
// fast instead of hanging on user input.
func ReadStdin() ([]byte, error) {
	if IsTerminal() {
		return nil, fmt.Errorf("no data provided on stdin (hint: pipe the file contents to this command)")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("stdin is empty")
	}
	return data, nil
}
