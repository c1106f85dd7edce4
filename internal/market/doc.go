// Package market implements the pure parsing layer of the loader: extracting
// structured metadata from market-data filenames and decomposing futures
// symbols into root, delivery month, and delivery year.
//
// Both operations are deterministic, allocation-light, and safe for
// concurrent use; every ingestion worker calls them directly.
package market
