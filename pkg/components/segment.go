package components

// SegmentComponent 蛇链节段的碰撞免疫状态
//
// 新追加的节段以 IgnoreCollision = true 开始，并带有一个新的倒计时（默认 2 秒）。
// 倒计时第一次完成时 IgnoreCollision 变为 false，此后永远保持 false：
// 计时器虽然声明为重复计时，但只在免疫期内推进，完成后不再被查询或重置。
//
// 蛇头持有零值 SegmentComponent（免疫关闭、计时器为空）。
type SegmentComponent struct {
	IgnoreCollision bool
	CollisionTimer  TimerComponent
}
