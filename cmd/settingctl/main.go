/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command settingctl queries, inspects and imports setting assets.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
