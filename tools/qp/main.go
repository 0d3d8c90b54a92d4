package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-qpstream/tools/qp/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
