package main

// exitCodeFor maps any error returned out of a subcommand's RunE to a
// process exit code. Every surfaced failure kind (bad format, header
// mismatch, I/O, inconsistent decode, broken invariant) is exit 1; only
// a successful decision, SAT or UNSAT, exits 0 (spec §6-7).
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
