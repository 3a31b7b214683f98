package service

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock は現在時刻を返します。テストでは固定の時刻を渡します。
type Clock func() time.Time

// today は loc での今日の日付です。
func today(clock Clock, loc *time.Location) civil.Date {
	if clock == nil {
		clock = time.Now
	}
	return civil.DateOf(clock().In(loc))
}
