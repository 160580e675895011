package utils

func StringPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }

func UintPtr(u uint) *uint { return &u }

func Float64Ptr(f float64) *float64 { return &f }

// StringOr dereferences s, falling back to def when absent.
func StringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// IntOr dereferences i, falling back to def when absent.
func IntOr(i *int, def int) int {
	if i == nil {
		return def
	}
	return *i
}

// Float64Or dereferences f, falling back to def when absent.
func Float64Or(f *float64, def float64) float64 {
	if f == nil {
		return def
	}
	return *f
}
