package pkg

// Contains check source have target
func Contains(slice []string, val string) bool {
	for _, v := range slice {
		if v == val {
			return true
		}
	}
	return false
}

// Toggle remove val when present, otherwise append it. 不修改原 slice
func Toggle(slice []string, val string) []string {
	out := make([]string, 0, len(slice)+1)
	removed := false
	for _, v := range slice {
		if v == val {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		out = append(out, val)
	}
	return out
}
