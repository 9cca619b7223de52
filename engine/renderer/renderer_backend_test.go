package renderer

import "testing"

func TestClampViewport(t *testing.T) {
	testCases := map[string]struct {
		viewport [4]int
		width    int
		height   int
		expected [4]int
	}{
		"Inside":        {viewport: [4]int{0, 0, 800, 600}, width: 800, height: 600, expected: [4]int{0, 0, 800, 600}},
		"WindowShrunk":  {viewport: [4]int{0, 0, 1280, 720}, width: 800, height: 600, expected: [4]int{0, 0, 800, 600}},
		"Offset":        {viewport: [4]int{100, 50, 800, 600}, width: 800, height: 600, expected: [4]int{100, 50, 700, 550}},
		"NegativeStart": {viewport: [4]int{-10, -10, 100, 100}, width: 800, height: 600, expected: [4]int{0, 0, 100, 100}},
		"OutsideRight":  {viewport: [4]int{900, 0, 100, 100}, width: 800, height: 600, expected: [4]int{800, 0, 0, 100}},
		"Empty":         {viewport: [4]int{0, 0, 0, 0}, width: 800, height: 600, expected: [4]int{0, 0, 0, 0}},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := clampViewport(tt.viewport, tt.width, tt.height); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
