package goodrouter

// Parameter is a single route parameter with its concrete value.
//
// Example:
//
//	Template: /user/{id}/posts/{postId}
//	Path:     /user/123/posts/456
//	Result:   []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
//
// An ordered slice rather than a map preserves the parameter sequence of the
// route template.
type Parameter struct {
	Key   string
	Value string
}
