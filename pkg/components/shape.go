package components

import "image/color"

// ShapeComponent 描述实体的绘制形状（实心圆）
// 渲染协作方根据它在 TransformComponent 的位置绘制实体
type ShapeComponent struct {
	Radius float64    // 绘制半径（游戏单位）
	Color  color.RGBA // 填充颜色
}
