package components

import "image/color"

// LabelComponent 静态或动态文字
//
// Provider 非空时每帧调用它获取文字，否则显示 Text。
type LabelComponent struct {
	Text     string
	Provider func() string
	Color    color.Color
}

// LabelText 返回标签当前应显示的文字
func LabelText(l *LabelComponent) string {
	if l.Provider != nil {
		return l.Provider()
	}
	return l.Text
}
