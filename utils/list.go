package utils

// StrSliceHasItem checks item presence in slice of strings
func StrSliceHasItem(s []string, item string) bool {
	for _, v := range s {
		if v == item {
			return true
		}
	}
	return false
}
