package utils

// SplitChunks slices s into consecutive chunks of at most size bytes,
// preserving document order. Chunks never overlap and concatenating them in
// order reproduces s exactly; only the last chunk may be shorter than size.
func SplitChunks(s string, size int) []string {
	if size <= 0 || s == "" {
		return nil
	}
	chunks := make([]string, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[start:end])
	}
	return chunks
}

// Truncate caps s at max bytes.
func Truncate(s string, max int) string {
	if max >= 0 && len(s) > max {
		return s[:max]
	}
	return s
}
