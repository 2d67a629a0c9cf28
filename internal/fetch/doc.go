// Package fetch provides the reusable async consumption primitives layered on
// the domain services: single-shot fetches, page-accumulating fetches, and
// mutations. Each primitive holds a {data, loading, error} snapshot that the
// consuming layer polls after operations settle.
//
// None of the primitives abort superseded calls: if a second Execute is
// issued before the first resolves, both proceed and the last one to resolve
// wins the final snapshot. Callers that need sequencing disable the trigger
// while Loading is true.
package fetch
