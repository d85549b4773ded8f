// Package greet builds the hello greeting.
package greet

import "fmt"

// DefaultName is used when no name is given.
const DefaultName = "world"

// Greeting returns "Hello, {name}", defaulting the name when empty.
func Greeting(name string) string {
	if name == "" {
		name = DefaultName
	}
	return fmt.Sprintf("Hello, %s", name)
}
