package sqlutil

// Chunk splits ids into consecutive batches of at most size elements.
// A non-positive size yields a single batch.
func Chunk[T any](ids []T, size int) [][]T {
	if len(ids) == 0 {
		return nil
	}
	if size <= 0 || size >= len(ids) {
		return [][]T{ids}
	}
	batches := make([][]T, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, ids[start:end])
	}
	return batches
}
