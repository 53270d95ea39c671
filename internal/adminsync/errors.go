package adminsync

import "errors"

var (
	// ErrBucketNotFound indicates the named bucket has never been loaded
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrNotInBucket indicates the item is not present in the source bucket
	ErrNotInBucket = errors.New("item not in bucket")

	// ErrOperationInFlight indicates another operation on the same item has
	// not resolved yet. Operations on the same item are serialized so two
	// optimistic moves can never interleave.
	ErrOperationInFlight = errors.New("operation already in flight for this item")
)
