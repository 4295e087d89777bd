// Package driving defines the driving ports (primary adapters' contracts)
// for Blockdex.
//
// Driving ports are the interfaces front ends (CLI, watcher) call into
// the core through. Services in internal/core/services implement them.
package driving
