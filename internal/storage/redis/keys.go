package redis

import (
	"fmt"

	"github.com/anvitha1105/Capstone-finalreview/internal/model"
)

// Key prefix for all arena data
const keyPrefix = "arena"

// userKey returns the Redis key for a User hash
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// userScoresKey returns the Redis key for the LIST of a user's score records
func userScoresKey(id model.UserID) string {
	return fmt.Sprintf("%s:scores:%s", keyPrefix, id)
}

// leaderboardKey returns the Redis key for the total-score ZSET
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}

// challengeKey returns the Redis key for a persisted Challenge
func challengeKey(id string) string {
	return fmt.Sprintf("%s:challenge:%s", keyPrefix, id)
}
