// package main provides the entry point for trivy2ignore, which converts Trivy JSON
// output into a .trivyignore.yaml suppression list.
package main

import "github.com/ortelius/trivy2ignore/cmd"

func main() {
	cmd.Execute()
}
