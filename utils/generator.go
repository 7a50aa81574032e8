package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultAvatars is the pool of placeholder portraits assigned to accounts
// without a profile picture. New users always receive the first entry.
var DefaultAvatars = []string{
	"https://i.pravatar.cc/150?img=12",
	"https://i.pravatar.cc/150?img=25",
	"https://i.pravatar.cc/150?img=33",
	"https://i.pravatar.cc/150?img=47",
}

func DefaultAvatar() string {
	return DefaultAvatars[0]
}

// GenerateBookingID keeps the dataset's wall-clock id convention for
// bookings created at runtime.
func GenerateBookingID() string {
	return fmt.Sprintf("booking_%d", time.Now().UnixNano())
}

func GenerateUserID() string {
	return "user_" + uuid.NewString()
}

func GenerateMessageID() string {
	return "msg_" + uuid.NewString()
}

func GenerateNotificationID() string {
	return "notif_" + uuid.NewString()
}

func GenerateTransactionID() string {
	return "txn_" + uuid.NewString()
}
