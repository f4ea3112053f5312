package utils

import (
	"bufio"
	"strings"
)

// ReadLine reads one line from the reader, stripping the trailing
// newline. The caller owns the bufio.Reader so buffered input survives
// across calls.
func ReadLine(reader *bufio.Reader) (string, error) {
	o, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimRight(o, "\r\n"), nil
}
