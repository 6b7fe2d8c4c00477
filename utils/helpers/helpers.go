package helpers

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jakehl/goid"
)

// CreateHash - md5 hex of key
func CreateHash(key string) string {
	hasher := md5.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

func LocationVietNam() *time.Location {
	location, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return location
}

func GetCurrentTime() time.Time {
	return time.Now().In(LocationVietNam())
}

func IsStringSliceContains(stringSlice []string, searchString string) bool {
	for _, value := range stringSlice {
		if value == searchString {
			return true
		}
	}
	return false
}

// ContextWithTimeOut - context for a single storage or broker call
func ContextWithTimeOut(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, 10*time.Second)
}
