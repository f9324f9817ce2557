package gqltype

// String returns the string argument or "" when absent or null.
func String(args map[string]interface{}, name string) string {
	v, _ := args[name].(string)
	return v
}

// OptionalString returns nil when the argument was not supplied.
func OptionalString(args map[string]interface{}, name string) *string {
	v, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &v
}

// OptionalFloat accepts both Float and Int literals.
func OptionalFloat(args map[string]interface{}, name string) *float64 {
	switch v := args[name].(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}

func Float(args map[string]interface{}, name string) float64 {
	if v := OptionalFloat(args, name); v != nil {
		return *v
	}
	return 0
}
