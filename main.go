// main.go
//
// Entry point; CLI handling lives in the cobra commands under cmd/.

package main

import (
	"cpu-scheduler-comparison/cmd"
)

func main() {
	cmd.Execute()
}
