// cmd/timesheet/main.go
package main

import "gitlab-timesheet/internal/cli"

func main() {
	cli.Execute()
}
