// Package check defines the recoverable failure kind signaled by probed
// conditions, meaning "not yet true" rather than a genuine fault.
//
// Retry loops absorb this kind until their budget runs out and only then
// escalate the last failure, with the full chronological history of
// earlier failures attached for diagnosis.
package check
