// Package runfile loads sweep settings from an HCL run file.
//
// A run file looks like:
//
//	sweep {
//	  nodes  = 1000
//	  copies = 100
//	}
//
//	seed       = 42
//	workers    = cpus
//	max_nodes  = 20000
//	retain     = false
//	on_failure = "fail"   # or "nan"
//
//	log {
//	  level  = "info"     # debug, info, warn, error
//	  format = "text"     # text or json
//	}
//
// Expressions are evaluated with the variable cpus bound to the number of
// logical CPUs. Absent attributes keep the values of Defaults.
package runfile
