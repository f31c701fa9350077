package types

// Vector 整数方向向量，分量取值 -1、0、+1
type Vector struct {
	X, Y int
}

// IsZero 判断是否为零向量
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add 返回两个向量之和
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sign 将每个分量压缩到 {-1, 0, +1}
func (v Vector) Sign() Vector {
	return Vector{X: sign(v.X), Y: sign(v.Y)}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Direction 八方向朝向
type Direction int

const (
	// DirRight 右 (+1, 0)
	DirRight Direction = iota
	// DirUpRight 右上 (+1, -1)
	DirUpRight
	// DirUp 上 (0, -1)
	DirUp
	// DirUpLeft 左上 (-1, -1)
	DirUpLeft
	// DirLeft 左 (-1, 0)
	DirLeft
	// DirDownLeft 左下 (-1, +1)
	DirDownLeft
	// DirDown 下 (0, +1)
	DirDown
	// DirDownRight 右下 (+1, +1)
	DirDownRight

	// DirectionCount 方向总数，用作精灵朝向表长度
	DirectionCount
)

var directionVectors = [DirectionCount]Vector{
	DirRight:     {X: 1, Y: 0},
	DirUpRight:   {X: 1, Y: -1},
	DirUp:        {X: 0, Y: -1},
	DirUpLeft:    {X: -1, Y: -1},
	DirLeft:      {X: -1, Y: 0},
	DirDownLeft:  {X: -1, Y: 1},
	DirDown:      {X: 0, Y: 1},
	DirDownRight: {X: 1, Y: 1},
}

// Vector 返回方向对应的单位向量
func (d Direction) Vector() Vector {
	if d < 0 || d >= DirectionCount {
		return Vector{}
	}
	return directionVectors[d]
}

// IsLeftward 判断朝向是否带有向左的分量
// 向左的朝向使用原始图像，其余朝向使用水平翻转后的图像
func (d Direction) IsLeftward() bool {
	return d.Vector().X < 0
}

// String 返回方向的字符串表示
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirUpRight:
		return "UpRight"
	case DirUp:
		return "Up"
	case DirUpLeft:
		return "UpLeft"
	case DirLeft:
		return "Left"
	case DirDownLeft:
		return "DownLeft"
	case DirDown:
		return "Down"
	case DirDownRight:
		return "DownRight"
	default:
		return "Unknown"
	}
}

// DirectionFromDelta 将一帧的净位移归一化为八方向之一
// 零位移返回 false
func DirectionFromDelta(delta Vector) (Direction, bool) {
	unit := delta.Sign()
	if unit.IsZero() {
		return DirRight, false
	}
	for d, v := range directionVectors {
		if v == unit {
			return Direction(d), true
		}
	}
	return DirRight, false
}
