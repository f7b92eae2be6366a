package pure_utils

func Ptr[T any](v T) *T {
	return &v
}

func PtrValueOrDefault[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}
