// Gafeval evaluates sequence-to-graph alignments against a reference path.
package main

import "github.com/mouse-blink/gafeval/cmd"

func main() {
	cmd.Execute()
}
