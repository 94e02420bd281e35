// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/textr/textr/cmd/textr"

func main() {
	cmd.Execute()
}
