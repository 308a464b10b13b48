// Package runtime routes faults recovered by test infrastructure
// through an explicitly installed handler instead of mutating ambient
// process-global state.
//
// A Handler is installed and uninstalled as a scoped pair:
//
//	uninstall := handler.Install()
//	defer uninstall()
package runtime
