package models

// FetchResult holds the outcome of a log query.
// A failed query is not an error return: Err is set and Commits is empty,
// so callers can tell "no commits" apart from "query failed".
type FetchResult struct {
	Commits []CommitRecord
	// Skipped counts records dropped for lacking a field delimiter
	Skipped int
	// Err is the reason the query degraded to an empty result
	Err error
}

// Degraded reports whether the query failed
func (r FetchResult) Degraded() bool {
	return r.Err != nil
}
