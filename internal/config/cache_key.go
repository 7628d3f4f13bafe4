package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CourseTimetablesKey returns the cache key for a course's reassembled
// (logical) timetable entries.
func (r *CacheKeyStruct) CourseTimetablesKey(courseID string) string {
	return fmt.Sprintf("course:%s:timetables", courseID)
}

var CacheKey = NewCacheKeyStruct()
