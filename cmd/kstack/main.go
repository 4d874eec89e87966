// Command kstack prints a script exception report, read as JSON from a file
// or stdin, the way the script runtime shows uncaught errors.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
