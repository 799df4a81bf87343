// Package selection implements the persistent, ordered set of canonical
// paths that xfiles manipulates.
//
// Every mutation is a full load, modify and rewrite of the backing store.
// There is no cache across calls and no locking: concurrent invocations on
// the same store resolve as last writer wins.
//
// Items are normalized with paths.Normalizer before they reach the list, so
// two spellings of the same path deduplicate and remove each other. A batch
// is normalized completely before the store is touched; one unresolvable
// item leaves the store unchanged.
package selection
