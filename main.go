// =============================================================================
// recordkeeper - Main Entry Point
// =============================================================================
//
// USAGE:
//   recordkeeper finance     - Apply transactions and print the history
//   recordkeeper health      - List patients and prescriptions
//   recordkeeper warehouse   - Manage the electronics and grocery inventories
//   recordkeeper validate    - Validate the seed data
//   recordkeeper version     - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : Cobra command definitions
//   - internal/  : Domain packages, repositories, import/export
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/recordkeeper/cmd"
)

func main() {
	cmd.Execute()
}
