package mappers

import "time"

func milliToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func milliPtrToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

func timePtrToMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
