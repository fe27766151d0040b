// Command dispatchctl maintains dispatch backup files offline.
//
//	dispatchctl reconcile backup.json [--dry-run]
//	dispatchctl stats backup.json
//	dispatchctl export-csv backup.json [-o historico.csv]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
