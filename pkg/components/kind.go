package components

// EntityKind 标识实体的种类
// 本游戏的实体集合是固定且已知的：蛇头、蛇身节段、金币
type EntityKind int

const (
	// KindSnakeHead 蛇头（蛇链索引 0）
	KindSnakeHead EntityKind = iota
	// KindSnakeSegment 蛇身节段
	KindSnakeSegment
	// KindCoin 金币
	KindCoin
)

// String 返回实体种类的名称（用于日志）
func (k EntityKind) String() string {
	switch k {
	case KindSnakeHead:
		return "SnakeHead"
	case KindSnakeSegment:
		return "SnakeSegment"
	case KindCoin:
		return "Coin"
	default:
		return "Unknown"
	}
}
