// Package srs は単語帳の間隔反復 (spaced repetition) エンジンです。
//
// 単語ペアは方向ごと (言語1→言語2, 言語2→言語1) に強さ (strength) と次回復習日を持ちます。
// 正解すると間隔は 1, 2, 4, 8, ... 日と倍々に伸び、不正解なら当日に戻ります。
//
// パッケージ内の関数はすべて副作用のない純粋な計算です。「今日」は必ず呼び出し側が渡し、
// 永続化やロギングは呼び出し側 (service 層) の責務です。
package srs
