package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProfileKeyPrefix = "profile:handle:%s"
	PostKeyPrefix    = "post:%d"
)

const (
	ProfileTTL = 5 * time.Minute
	PostTTL    = 2 * time.Minute
)

func ProfileKey(handle string) string {
	return fmt.Sprintf(ProfileKeyPrefix, handle)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateProfile(ctx context.Context, handle string) {
	Invalidate(ctx, ProfileKey(handle))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
