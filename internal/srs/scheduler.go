package srs

import "cloud.google.com/go/civil"

// MaxIntervalExponent は間隔計算に使う指数の上限です (2^29 日 ≒ 147 万年)。
// 外部データ由来の極端な strength でシフトがオーバーフローしないようにします。
const MaxIntervalExponent = 29

// NextDueDate は from から 2^max(strength, 0) 日後の日付を返します。
func NextDueDate(strength int, from civil.Date) civil.Date {
	if strength < 0 {
		strength = 0
	}
	if strength > MaxIntervalExponent {
		strength = MaxIntervalExponent
	}
	return from.AddDays(1 << strength)
}

// Strengthen は正解時の遷移です。次回日は加算前の strength で計算します。
func Strengthen(s ReviewState, today civil.Date) ReviewState {
	return ReviewState{
		Strength: s.Strength + 1,
		DueDate:  NextDueDate(s.Strength, today),
	}
}

// Weaken は不正解時の遷移です。当日に再出題し、strength は min(strength, 0) に落とします。
// 既に負の strength はそのまま残ります。
func Weaken(s ReviewState, today civil.Date) ReviewState {
	strength := s.Strength
	if strength > 0 {
		strength = 0
	}
	return ReviewState{Strength: strength, DueDate: today}
}

// Answer は回答の正誤に応じて Strengthen か Weaken を適用します。
func Answer(s ReviewState, today civil.Date, correct bool) ReviewState {
	if correct {
		return Strengthen(s, today)
	}
	return Weaken(s, today)
}

// AlreadyAnswered は今日の回答が既に反映済み (次回日が未来) かを返します。
// 同じ回答が二重に送られても強さが二度上がらないように使います。
func AlreadyAnswered(s ReviewState, today civil.Date) bool {
	return s.DueDate.After(today)
}
