package main

import (
	"github.com/bomcompare/bomgen/cmd"
	"github.com/bomcompare/bomgen/common"
)

func main() {
	defer common.ExitProtection()
	cmd.Execute()
}
