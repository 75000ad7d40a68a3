package testutils

// MockDisplay counts refresh notifications.
type MockDisplay struct {
	Refreshes int
}

// RefreshCachedVariables implements ziletypes.Display.
func (d *MockDisplay) RefreshCachedVariables() {
	d.Refreshes++
}
