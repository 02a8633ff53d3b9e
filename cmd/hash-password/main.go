// Command hash-password prints a bcrypt hash for ADMIN_PASSWORD_HASH. The
// password is read from the first line of stdin so it stays out of shell
// history.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/example/innatural/internal/utils"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(os.Stderr, "Failed to read password: %v\n", err)
		os.Exit(1)
	}

	hash, err := utils.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
