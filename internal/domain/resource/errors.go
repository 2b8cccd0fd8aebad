package resource

import "errors"

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrSlugExists       = errors.New("slug already in use")
)
