package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// confirmIfExists checks whether path exists, and if so asks the user for
// confirmation before continuing. It returns true if path doesn't exist, or
// the user answered yes. If ok is false or err is non-nil, the caller should
// abort.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation prints msg and reads a y/n answer from standard input.
// Typing ENTER defaults to no.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		c := string([]byte(input)[0])[0]
		if c == 10 {
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

// check prints err to standard error and exits the process if err is
// non-nil, so a solve failure never mixes a diagnostic into the solution
// written to standard output.
func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error, %v\n", err)
		os.Exit(-1)
	}
}
