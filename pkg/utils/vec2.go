// Package utils 提供游戏开发中常用的工具函数
//
// vec2.go 提供二维向量运算，坐标系为游戏坐标：原点位于窗口中心，Y 轴向上。
package utils

import "math"

// Vec2 二维向量（游戏坐标）
type Vec2 struct {
	X, Y float64
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量相减
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 向量数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance 两点间的欧氏距离
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// NormalizeOrZero 返回单位向量
// 长度为 0（或结果不是有限值）时返回零向量，保证不会产生 NaN/Inf
func (v Vec2) NormalizeOrZero() Vec2 {
	length := v.Length()
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return Vec2{}
	}
	n := Vec2{X: v.X / length, Y: v.Y / length}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		return Vec2{}
	}
	return n
}

// Lerp 线性插值：t=0 返回 v，t=1 返回 o
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// Angle 返回 +X 轴到该向量的有符号夹角（弧度，范围 (-π, π]）
// 零向量返回 0
func (v Vec2) Angle() float64 {
	if v.IsZero() {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// NormalizeAngle 将角度规范到 (-π, π]
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// SlerpAngle 绕 Z 轴旋转的球面插值
//
// 对于纯 Z 轴旋转，四元数 slerp 等价于沿最短弧线对角度做线性插值。
// 结果规范到 (-π, π]。
func SlerpAngle(from, to, t float64) float64 {
	delta := NormalizeAngle(to - from)
	return NormalizeAngle(from + delta*t)
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
