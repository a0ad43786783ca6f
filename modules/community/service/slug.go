package service

import (
	"context"
	"strings"

	"internhub/core/utils"

	"github.com/gosimple/slug"
)

// slugExistsFunc reports whether a slug is already taken.
type slugExistsFunc func(ctx context.Context, slug string) (bool, error)

// uniqueSlug builds a URL slug from text, appending a short nanoid suffix
// when the base slug is already taken.
func uniqueSlug(ctx context.Context, text string, exists slugExistsFunc) (string, error) {
	base := slug.Make(text)
	taken, err := exists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return base + "-" + strings.ToLower(utils.GenerateID()), nil
}
