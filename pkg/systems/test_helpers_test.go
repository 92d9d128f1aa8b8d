package systems

// mockPointerInput 用于测试的 mock 指针输入
type mockPointerInput struct {
	mouseX       int
	mouseY       int
	pressed      bool
	justReleased bool
}

func (m *mockPointerInput) CursorPosition() (int, int) {
	return m.mouseX, m.mouseY
}

func (m *mockPointerInput) IsPressed() bool {
	return m.pressed
}

func (m *mockPointerInput) IsJustReleased() bool {
	return m.justReleased
}
