package yars

// System order within a frame; higher runs first.
const (
	priorityTerminalInput = 100
	priorityYar           = 90
	priorityQotile        = 80
	priorityCannon        = 70
	priorityShield        = 60
	prioritySound         = 20
	priorityHud           = 10
	priorityTerminalDraw  = -100
)

const (
	zShield float32 = 5
	zQotile float32 = 6
	zCannon float32 = 9
	zYar    float32 = 10
	zHud    float32 = 100
)
