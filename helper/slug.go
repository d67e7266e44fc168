package helper

import (
	"fmt"

	"room_booking/model"

	"github.com/gosimple/slug"
)

// GenerateUniqueRoomSlug builds a URL slug from the room name, suffixing a
// counter until it collides with no existing room.
func GenerateUniqueRoomSlug(rooms []model.Room, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		taken := false
		for _, r := range rooms {
			if r.Slug == result {
				taken = true
				break
			}
		}
		if !taken {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
