package paramutils

type MockFlagSet struct {
	Values map[string]interface{}
}

func (fs *MockFlagSet) GetStringOrDefault(flag, d string) string {
	if val, ok := fs.Values[flag].(string); ok && val != "" {
		return val
	}

	return d
}

func (fs *MockFlagSet) GetBoolOrDefault(flag string, d bool) bool {
	if val, ok := fs.Values[flag].(bool); ok {
		return val
	}

	return d
}
