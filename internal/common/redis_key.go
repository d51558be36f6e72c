package common

import (
	"fmt"
	"strings"
)

func RedisKeyCreatorReputation() string {
	return "leaderboard:creator:reputation"
}

func RedisKeyCreatorCompleted() string {
	return "leaderboard:creator:completed"
}

func RedisValueCreator(displayName, profileID string) string {
	return fmt.Sprintf("%s***%s", displayName, profileID)
}

func FromRedisValueCreator(value string) (string, string) {
	parts := strings.Split(value, "***")
	return parts[0], parts[1]
}
